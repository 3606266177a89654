package domain

import (
	"fmt"
	"time"
)

// DonationStatus enumerates the donation lifecycle states.
type DonationStatus string

const (
	DonationPending  DonationStatus = "pending"
	DonationAssigned DonationStatus = "assigned"
	DonationRejected DonationStatus = "rejected"
)

// ParseDonationStatus validates a status string coming from the request layer.
func ParseDonationStatus(s string) (DonationStatus, bool) {
	switch DonationStatus(s) {
	case DonationPending, DonationAssigned, DonationRejected:
		return DonationStatus(s), true
	}
	return "", false
}

// Donation is an item donation registered by a donor. Once it leaves the
// pending state it is terminal; no transition back to pending exists.
type Donation struct {
	ID             int64
	TrackingID     string
	ItemName       string
	CategoryHint   string
	Quantity       int
	Condition      string
	Description    string
	DonorZone      string
	Status         DonationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AssignedAt     *time.Time
	RejectedAt     *time.Time
	RejectedReason string
	DonorID        int64
	NGOID          *int64
	NeedID         *int64
}

// IsPending reports whether the donation can still be assigned or rejected.
func (d Donation) IsPending() bool {
	return d.Status == DonationPending
}

// FormatTrackingID renders a sequence number as a public tracking code,
// e.g. 7 -> "DN-007". Sequences beyond 999 widen naturally.
func FormatTrackingID(seq int64) string {
	return fmt.Sprintf("DN-%03d", seq)
}
