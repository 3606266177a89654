package domain

import (
	"context"
	"time"
)

// Assignment carries the full effect of assigning a pending donation:
// the status transition, the NGO load bump and the optional need credit.
// Implementations must apply it atomically and only while the donation is
// still pending.
type Assignment struct {
	DonationID int64
	NGOID      int64
	NeedID     *int64
	Quantity   int
	At         time.Time
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Create stores a new pending donation and issues its tracking code
	// atomically with the insert: the code derives from the highest stored
	// row key (DN-001 when the table is empty) and two racing submissions
	// must never observe the same value.
	Create(ctx context.Context, d *Donation) error
	GetByID(ctx context.Context, id int64) (*Donation, error)
	GetByTracking(ctx context.Context, trackingID string, donorID int64) (*Donation, error)
	ListByStatus(ctx context.Context, status DonationStatus) ([]Donation, error)
	// Assign applies the assignment iff the donation is still pending,
	// returning a StateConflictError otherwise.
	Assign(ctx context.Context, a Assignment) error
	// Reject transitions a pending donation to rejected, returning a
	// StateConflictError when the donation already left pending.
	Reject(ctx context.Context, donationID int64, reason string, at time.Time) error
	CountByStatus(ctx context.Context) (map[DonationStatus]int64, error)
}

// NGORepository defines access to distribution partners.
type NGORepository interface {
	GetByID(ctx context.Context, id int64) (*NGO, error)
	List(ctx context.Context) ([]NGO, error)
}

// NeedRepository defines persistence for NGO needs.
type NeedRepository interface {
	Create(ctx context.Context, n *Need) error
	GetByID(ctx context.Context, id int64) (*Need, error)
	ListByNGO(ctx context.Context, ngoID int64) ([]Need, error)
	LatestActiveByNGO(ctx context.Context, ngoID int64) (*Need, error)
	ToggleActive(ctx context.Context, id int64) (*Need, error)
}

// UserRepository defines access methods for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
}
