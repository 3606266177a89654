// Package sqlinline holds every SQL statement the service executes. Each
// statement starts with a "--sql <uuid>" marker line that the SQLRunner
// validates and uses to identify the query in logs.
package sqlinline

// QInsertDonation issues the tracking code and inserts in one statement, so
// issuance can never observe a max(id) the insert does not commit against.
// Two statements racing on the same sequence value are serialized by the
// tracking_id unique constraint and the loser retries.
const QInsertDonation = `--sql cc36a573-bc96-4024-92c6-97f5f8f96ffc
with next as (
    select coalesce(max(id), 0) + 1 as seq
    from donations
)
insert into donations(tracking_id, item_name, category_hint, quantity, condition, description, donor_zone, status, donor_id, created_at, updated_at)
select 'DN-' || lpad(seq::text, greatest(length(seq::text), 3), '0'),
       $1::text, $2::text, $3::int, $4::text, $5::text, $6::text, 'pending', $7::bigint, now(), now()
from next
returning id, tracking_id, created_at, updated_at;
`

const donationColumns = `id, tracking_id, item_name, category_hint, quantity, condition, description, donor_zone,
       status, created_at, updated_at, assigned_at, rejected_at, coalesce(rejected_reason, ''), donor_id, ngo_id, need_id`

const QGetDonationByID = `--sql b020104b-1cf1-431f-8282-2b01716ba0bc
select ` + donationColumns + `
from donations
where id = $1::bigint;
`

const QGetDonationByTracking = `--sql 55dcc964-063a-4164-9fba-8ab2f93a5a41
select ` + donationColumns + `
from donations
where tracking_id = $1::text
  and donor_id = $2::bigint;
`

const QListPendingDonations = `--sql 083e53b6-17ba-47db-87e3-2eb6530f9fda
select ` + donationColumns + `
from donations
where status = 'pending'
order by created_at asc;
`

const QListSettledDonations = `--sql 4549dca0-da8e-4374-9f66-53b2f5d19a32
select ` + donationColumns + `
from donations
where status = $1::text
order by updated_at desc;
`

const QAssignDonation = `--sql bebffc84-26eb-4a46-bdcc-3feba9f82d30
update donations
set status = 'assigned',
    ngo_id = $2::bigint,
    need_id = $3::bigint,
    assigned_at = $4::timestamptz,
    updated_at = $4::timestamptz
where id = $1::bigint
  and status = 'pending';
`

const QRejectDonation = `--sql 1b65e49c-595f-4b59-9c8a-c1c77d260d0c
update donations
set status = 'rejected',
    rejected_reason = $2::text,
    rejected_at = $3::timestamptz,
    updated_at = $3::timestamptz
where id = $1::bigint
  and status = 'pending';
`

const QCountDonationsByStatus = `--sql 429a3439-fea7-41df-bb36-185c707b21ee
select status, count(*)
from donations
group by status;
`
