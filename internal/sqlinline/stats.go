package sqlinline

const QStatsSummary = `--sql 9ebbf45e-9cd3-4753-b457-6597e0cfe263
select count(*) filter (where status = 'pending'),
       count(*) filter (where status = 'assigned'),
       count(*) filter (where status = 'rejected'),
       (select count(*) from ngos),
       (select count(*) from ngo_needs where is_active),
       (select coalesce(sum(current_load), 0) from ngos)
from donations;
`
