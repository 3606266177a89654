package sqlinline

const needColumns = `id, ngo_id, item_name, coalesce(category, ''), coalesce(details, ''), coalesce(condition_needed, ''),
       qty_required, qty_fulfilled, is_active, created_at, updated_at`

const QInsertNeed = `--sql afaf9f28-1496-4a97-8088-012d21156c67
insert into ngo_needs(ngo_id, item_name, category, details, condition_needed, qty_required, qty_fulfilled, is_active, created_at, updated_at)
values ($1::bigint, $2::text, nullif($3::text, ''), nullif($4::text, ''), nullif($5::text, ''), $6::int, 0, true, now(), now())
returning id, created_at, updated_at;
`

const QGetNeed = `--sql 150fc949-98e1-4f55-9092-aa56566dd29e
select ` + needColumns + `
from ngo_needs
where id = $1::bigint;
`

const QListNeedsByNGO = `--sql b8a5506d-b04d-40ef-bd6a-c9176c9ff6cb
select ` + needColumns + `
from ngo_needs
where ngo_id = $1::bigint
order by created_at desc;
`

const QLatestActiveNeed = `--sql a39248b8-8f44-4d4e-9ad5-820db1727b4f
select ` + needColumns + `
from ngo_needs
where ngo_id = $1::bigint
  and is_active
order by created_at desc
limit 1;
`

const QToggleNeed = `--sql f9353d94-2b9b-4167-b297-985dbf1613b0
update ngo_needs
set is_active = not is_active,
    updated_at = now()
where id = $1::bigint
returning ` + needColumns + `;
`

// QCreditNeed caps fulfillment at the requirement; excess is discarded.
const QCreditNeed = `--sql cd278664-46dd-40ea-97a3-aadf540529ae
update ngo_needs
set qty_fulfilled = least(qty_required, qty_fulfilled + $2::int),
    updated_at = $3::timestamptz
where id = $1::bigint;
`
