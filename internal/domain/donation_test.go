package domain

import "testing"

func TestFormatTrackingID(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "DN-001"},
		{2, "DN-002"},
		{42, "DN-042"},
		{999, "DN-999"},
		{1000, "DN-1000"},
	}
	for _, tc := range cases {
		if got := FormatTrackingID(tc.seq); got != tc.want {
			t.Fatalf("FormatTrackingID(%d): got %q want %q", tc.seq, got, tc.want)
		}
	}
}

func TestParseDonationStatus(t *testing.T) {
	if _, ok := ParseDonationStatus("assigned"); !ok {
		t.Fatal("assigned must parse")
	}
	if _, ok := ParseDonationStatus("received"); ok {
		t.Fatal("unknown status must not parse")
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel("  used "); got != "Used" {
		t.Fatalf("NormalizeLabel: got %q want %q", got, "Used")
	}
	if got := NormalizeLabel(""); got != "" {
		t.Fatalf("NormalizeLabel empty: got %q", got)
	}
}
