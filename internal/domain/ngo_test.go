package domain

import "testing"

func TestApplyFulfillmentCapsAtRequirement(t *testing.T) {
	n := Need{QtyRequired: 10, QtyFulfilled: 5}
	n.ApplyFulfillment(7)
	if n.QtyFulfilled != 10 {
		t.Fatalf("qty_fulfilled: got %d want 10", n.QtyFulfilled)
	}
	if n.QtyRemaining() != 0 {
		t.Fatalf("qty_remaining: got %d want 0", n.QtyRemaining())
	}
}

func TestApplyFulfillmentWithinRequirement(t *testing.T) {
	n := Need{QtyRequired: 10}
	n.ApplyFulfillment(3)
	if n.QtyFulfilled != 3 {
		t.Fatalf("qty_fulfilled: got %d want 3", n.QtyFulfilled)
	}
	if n.QtyRemaining() != 7 {
		t.Fatalf("qty_remaining: got %d want 7", n.QtyRemaining())
	}
}

func TestApplyFulfillmentIgnoresNonPositive(t *testing.T) {
	n := Need{QtyRequired: 10, QtyFulfilled: 4}
	n.ApplyFulfillment(0)
	n.ApplyFulfillment(-3)
	if n.QtyFulfilled != 4 {
		t.Fatalf("qty_fulfilled: got %d want 4", n.QtyFulfilled)
	}
}

func TestQtyRemainingNeverNegative(t *testing.T) {
	n := Need{QtyRequired: 3, QtyFulfilled: 5}
	if n.QtyRemaining() != 0 {
		t.Fatalf("qty_remaining: got %d want 0", n.QtyRemaining())
	}
}
