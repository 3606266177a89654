package domain

import "time"

// NGO is a distribution partner that receives assigned donations.
type NGO struct {
	ID                 int64
	Name               string
	City               string
	Zone               string
	Address            string
	ContactEmail       string
	ContactPhone       string
	AcceptedCategories string // comma separated
	IsVerified         bool
	HasPickup          bool
	CurrentLoad        int
}

// Need is a declared requirement owned by exactly one NGO. Needs are never
// deleted; admins flip IsActive instead.
type Need struct {
	ID              int64
	NGOID           int64
	ItemName        string
	Category        string
	Details         string
	ConditionNeeded string
	QtyRequired     int
	QtyFulfilled    int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// QtyRemaining is derived, never stored.
func (n Need) QtyRemaining() int {
	remaining := n.QtyRequired - n.QtyFulfilled
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ApplyFulfillment credits qty against the need, capping at QtyRequired.
// Excess contribution is discarded, not carried over to another need.
func (n *Need) ApplyFulfillment(qty int) {
	if qty <= 0 {
		return
	}
	n.QtyFulfilled += qty
	if n.QtyFulfilled > n.QtyRequired {
		n.QtyFulfilled = n.QtyRequired
	}
}
