package sqlinline

const ngoColumns = `id, name, city, coalesce(zone, ''), coalesce(address, ''), coalesce(contact_email, ''),
       coalesce(contact_phone, ''), coalesce(accepted_categories, ''), is_verified, has_pickup, current_load`

const QGetNGO = `--sql 889a8aa6-f4ff-44d5-8fff-cb5433423f30
select ` + ngoColumns + `
from ngos
where id = $1::bigint;
`

const QListNGOs = `--sql b6949693-3166-4c95-921c-49fdb111a5c9
select ` + ngoColumns + `
from ngos
order by name asc;
`

const QBumpNGOLoad = `--sql 56142263-d4b3-480d-82fd-ffea9b3ad7bf
update ngos
set current_load = current_load + 1
where id = $1::bigint;
`

// QListNGOsWithLatestNeed powers the public directory: each NGO joined with
// its most recently declared active need, if any.
const QListNGOsWithLatestNeed = `--sql 69d3ad30-b1ae-4a83-8b0c-2ccd1901ba39
select n.id, n.name, n.city, coalesce(n.zone, ''), coalesce(n.accepted_categories, ''), n.has_pickup, n.current_load,
       d.id, d.item_name, coalesce(d.category, ''), d.qty_required, d.qty_fulfilled
from ngos n
left join lateral (
    select id, item_name, category, qty_required, qty_fulfilled
    from ngo_needs
    where ngo_id = n.id and is_active
    order by created_at desc
    limit 1
) d on true
order by n.name asc;
`
