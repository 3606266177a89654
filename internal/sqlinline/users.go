package sqlinline

const userColumns = `id, full_name, email, coalesce(phone, ''), password_hash, role, coalesce(zone, ''), created_at`

const QInsertUser = `--sql 1cfc0223-9e52-466b-b0cc-db18712d5df1
insert into users(full_name, email, phone, password_hash, role, zone, created_at)
values ($1::text, $2::text, nullif($3::text, ''), $4::text, $5::text, nullif($6::text, ''), now())
returning id, created_at;
`

const QGetUserByID = `--sql 5b7fd47c-0013-453e-b6d0-fd9a7c6abd5e
select ` + userColumns + `
from users
where id = $1::bigint;
`

const QGetUserByEmail = `--sql 2dad1b93-ecb5-46ff-be8f-e8ffc87f3c0c
select ` + userColumns + `
from users
where email = $1::text;
`

const QGetUserByPhone = `--sql 4d773190-7170-4e3b-ab89-23ed8f97c67b
select ` + userColumns + `
from users
where phone = $1::text;
`
