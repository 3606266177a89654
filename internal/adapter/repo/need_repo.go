package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// NeedRepositoryPG implements domain.NeedRepository backed by PostgreSQL.
type NeedRepositoryPG struct {
	db infra.SQLExecutor
}

// NewNeedRepository creates a new NeedRepositoryPG.
func NewNeedRepository(db infra.SQLExecutor) *NeedRepositoryPG {
	return &NeedRepositoryPG{db: db}
}

// Create inserts a new active need with zero fulfillment.
func (r *NeedRepositoryPG) Create(ctx context.Context, n *domain.Need) error {
	row := r.db.QueryRow(ctx, sqlinline.QInsertNeed,
		n.NGOID, n.ItemName, n.Category, n.Details, n.ConditionNeeded, n.QtyRequired)
	if err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return err
	}
	n.QtyFulfilled = 0
	n.IsActive = true
	return nil
}

// GetByID fetches a need by primary key.
func (r *NeedRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Need, error) {
	return scanNeed(r.db.QueryRow(ctx, sqlinline.QGetNeed, id))
}

// ListByNGO returns all needs declared by an NGO, newest first.
func (r *NeedRepositoryPG) ListByNGO(ctx context.Context, ngoID int64) ([]domain.Need, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListNeedsByNGO, ngoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Need
	for rows.Next() {
		n, err := scanNeed(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// LatestActiveByNGO returns the most recently created active need for an NGO.
func (r *NeedRepositoryPG) LatestActiveByNGO(ctx context.Context, ngoID int64) (*domain.Need, error) {
	return scanNeed(r.db.QueryRow(ctx, sqlinline.QLatestActiveNeed, ngoID))
}

// ToggleActive flips the active flag and returns the updated need.
func (r *NeedRepositoryPG) ToggleActive(ctx context.Context, id int64) (*domain.Need, error) {
	return scanNeed(r.db.QueryRow(ctx, sqlinline.QToggleNeed, id))
}

func scanNeed(row pgx.Row) (*domain.Need, error) {
	var n domain.Need
	err := row.Scan(
		&n.ID, &n.NGOID, &n.ItemName, &n.Category, &n.Details, &n.ConditionNeeded,
		&n.QtyRequired, &n.QtyFulfilled, &n.IsActive, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

var _ domain.NeedRepository = (*NeedRepositoryPG)(nil)
