package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"server/internal/auth"
)

const defaultAdminEmail = "admin@donation.com"

type seedNGO struct {
	name       string
	zone       string
	categories string
}

// The initial Karachi NGO directory, inserted only when the table is empty.
var seedNGOs = []seedNGO{
	{"Edhi Foundation - Karachi (Mithadar)", "Mithadar", "Clothes,Food,Medical"},
	{"Saylani Welfare Trust - Bahadurabad", "Bahadurabad", "Food,Clothes,Education"},
	{"Chhipa Welfare Association - Gulshan", "Gulshan-e-Iqbal", "Clothes,Food,Medical"},
	{"Aman Foundation - Korangi", "Korangi", "Medical,Education"},
	{"Alkhidmat Foundation - North Karachi", "North Karachi", "Food,Clothes"},
	{"The Citizens Foundation - Clifton", "Clifton", "Education"},
	{"HANDS Pakistan - Saddar", "Saddar", "Medical,Food,Clothes"},
	{"SIUT - Civil Lines", "Civil Lines", "Medical"},
	{"LRBT Free Eye Hospital - Landhi", "Landhi", "Medical"},
	{"JDC Welfare Organization - Johar", "Gulistan-e-Johar", "Food,Clothes,Medical"},
	{"Karachi Down Syndrome Program - PECHS", "PECHS", "Education,Medical"},
	{"Dar-ul-Sukun - Kashmir Road", "Kashmir Road", "Clothes,Medical,Education"},
	{"Lyari Community Development Project", "Lyari", "Education,Clothes,Food"},
	{"Sindh Institute of Physical Medicine & Rehabilitation", "Gulshan-e-Hadid", "Medical"},
	{"Memon Medical Institute Welfare", "Safoora", "Medical"},
	{"Marie Stopes Society - Garden", "Garden", "Medical,Education"},
	{"Legal Aid Society - Shahrah-e-Faisal", "Shahrah-e-Faisal", "Education"},
	{"DOHS Welfare Trust - Malir Cantt", "Malir Cantt", "Food,Clothes"},
	{"Patients' Aid Foundation - JPMC", "JPMC", "Medical"},
	{"Anjuman-e-Behbood-e-Samaji Gulberg", "Gulberg", "Clothes,Food,Education"},
}

// Seed fills an empty NGO table and creates the default admin account. Both
// steps are idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminPassword string, logger zerolog.Logger) error {
	if err := seedNGOsIfEmpty(ctx, pool, logger); err != nil {
		return err
	}
	return seedDefaultAdmin(ctx, pool, adminPassword, logger)
}

func seedNGOsIfEmpty(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM ngos`).Scan(&count); err != nil {
		return fmt.Errorf("count ngos: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, n := range seedNGOs {
		_, err := pool.Exec(ctx, `
INSERT INTO ngos (name, city, zone, accepted_categories, is_verified, has_pickup)
VALUES ($1, 'Karachi', $2, $3, true, true)
`, n.name, n.zone, n.categories)
		if err != nil {
			return fmt.Errorf("seed ngo %q: %w", n.name, err)
		}
	}
	logger.Info().Int("count", len(seedNGOs)).Msg("seeded ngo directory")
	return nil
}

func seedDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, password string, logger zerolog.Logger) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, defaultAdminEmail).Scan(&exists); err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO users (full_name, email, password_hash, role)
VALUES ('System Admin', $1, $2, 'admin')
`, defaultAdminEmail, hash)
	if err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	logger.Info().Str("email", defaultAdminEmail).Msg("created default admin")
	return nil
}
