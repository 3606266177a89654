package infra

import (
	"strings"
	"testing"
)

func TestExtractMarkerValid(t *testing.T) {
	query := "--sql 9b79c57c-3615-48a2-9d85-3426d5b3f7eb\nselect 1;"
	marker, trimmed, err := extractMarker(query)
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "9b79c57c-3615-48a2-9d85-3426d5b3f7eb" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if strings.TrimSpace(trimmed) != "select 1;" {
		t.Fatalf("trimmed query mismatch: %q", trimmed)
	}
}

func TestExtractMarkerRejectsUnmarkedQuery(t *testing.T) {
	if _, _, err := extractMarker("select 1;"); err == nil {
		t.Fatal("expected error for query without marker")
	}
}

func TestExtractMarkerRejectsMalformedUUID(t *testing.T) {
	if _, _, err := extractMarker("--sql not-a-uuid\nselect 1;"); err == nil {
		t.Fatal("expected error for malformed marker")
	}
}
