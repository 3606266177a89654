package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	db infra.SQLExecutor
	tx infra.TxRunner
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db infra.SQLExecutor, tx infra.TxRunner) *DonationRepositoryPG {
	return &DonationRepositoryPG{db: db, tx: tx}
}

// createAttempts bounds the retries when concurrent submissions race on the
// same tracking sequence value.
const createAttempts = 3

// Create inserts a new pending donation. The tracking code derives from the
// highest stored row key inside the insert statement itself; the derivation
// matches the legacy system, so rows are never deleted here. A concurrent
// submission that loses the race trips the tracking_id unique constraint and
// the insert reruns against the fresh maximum.
func (r *DonationRepositoryPG) Create(ctx context.Context, d *domain.Donation) error {
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		row := r.db.QueryRow(ctx, sqlinline.QInsertDonation,
			d.ItemName, d.CategoryHint, d.Quantity, d.Condition, d.Description, d.DonorZone, d.DonorID)
		err = row.Scan(&d.ID, &d.TrackingID, &d.CreatedAt, &d.UpdatedAt)
		if err == nil {
			d.Status = domain.DonationPending
			return nil
		}
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
			return err
		}
	}
	return err
}

// GetByID fetches a donation by primary key.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	return scanDonation(r.db.QueryRow(ctx, sqlinline.QGetDonationByID, id))
}

// GetByTracking fetches a donation by tracking code scoped to its donor.
func (r *DonationRepositoryPG) GetByTracking(ctx context.Context, trackingID string, donorID int64) (*domain.Donation, error) {
	return scanDonation(r.db.QueryRow(ctx, sqlinline.QGetDonationByTracking, trackingID, donorID))
}

// ListByStatus returns donations in the given state. Pending donations are
// listed oldest first for triage; settled ones newest first.
func (r *DonationRepositoryPG) ListByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error) {
	var rows pgx.Rows
	var err error
	if status == domain.DonationPending {
		rows, err = r.db.Query(ctx, sqlinline.QListPendingDonations)
	} else {
		rows, err = r.db.Query(ctx, sqlinline.QListSettledDonations, string(status))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Assign applies the assignment in one transaction, guarded by a
// compare-and-set on the pending status.
func (r *DonationRepositoryPG) Assign(ctx context.Context, a domain.Assignment) error {
	return r.tx.WithTx(ctx, func(tx infra.SQLExecutor) error {
		tag, err := tx.Exec(ctx, sqlinline.QAssignDonation, a.DonationID, a.NGOID, a.NeedID, a.At)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.Conflictf("donation is no longer pending")
		}
		if _, err := tx.Exec(ctx, sqlinline.QBumpNGOLoad, a.NGOID); err != nil {
			return err
		}
		if a.NeedID != nil && a.Quantity > 0 {
			if _, err := tx.Exec(ctx, sqlinline.QCreditNeed, *a.NeedID, a.Quantity, a.At); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reject transitions a pending donation to rejected with the given reason.
func (r *DonationRepositoryPG) Reject(ctx context.Context, donationID int64, reason string, at time.Time) error {
	tag, err := r.db.Exec(ctx, sqlinline.QRejectDonation, donationID, reason, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Conflictf("donation is no longer pending")
	}
	return nil
}

// CountByStatus returns per-status donation counts.
func (r *DonationRepositoryPG) CountByStatus(ctx context.Context) (map[domain.DonationStatus]int64, error) {
	rows, err := r.db.Query(ctx, sqlinline.QCountDonationsByStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.DonationStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.DonationStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	var status string
	err := row.Scan(
		&d.ID, &d.TrackingID, &d.ItemName, &d.CategoryHint, &d.Quantity, &d.Condition, &d.Description,
		&d.DonorZone, &status, &d.CreatedAt, &d.UpdatedAt, &d.AssignedAt, &d.RejectedAt, &d.RejectedReason,
		&d.DonorID, &d.NGOID, &d.NeedID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d.Status = domain.DonationStatus(status)
	return &d, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
