package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// NGORepositoryPG implements domain.NGORepository backed by PostgreSQL.
type NGORepositoryPG struct {
	db infra.SQLExecutor
}

// NewNGORepository creates a new NGORepositoryPG.
func NewNGORepository(db infra.SQLExecutor) *NGORepositoryPG {
	return &NGORepositoryPG{db: db}
}

// GetByID fetches an NGO by primary key.
func (r *NGORepositoryPG) GetByID(ctx context.Context, id int64) (*domain.NGO, error) {
	return scanNGO(r.db.QueryRow(ctx, sqlinline.QGetNGO, id))
}

// List returns all NGOs ordered by name.
func (r *NGORepositoryPG) List(ctx context.Context) ([]domain.NGO, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListNGOs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NGO
	for rows.Next() {
		n, err := scanNGO(rows)
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

func scanNGO(row pgx.Row) (*domain.NGO, error) {
	var n domain.NGO
	err := row.Scan(
		&n.ID, &n.Name, &n.City, &n.Zone, &n.Address, &n.ContactEmail,
		&n.ContactPhone, &n.AcceptedCategories, &n.IsVerified, &n.HasPickup, &n.CurrentLoad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

var _ domain.NGORepository = (*NGORepositoryPG)(nil)
