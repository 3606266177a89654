package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/sqlinline"
)

type directoryRow struct {
	id          int64
	name        string
	city        string
	zone        string
	categories  string
	hasPickup   bool
	currentLoad int
}

type directorySQL struct {
	rows []directoryRow
}

func (d *directorySQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func (d *directorySQL) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (d *directorySQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	if query != sqlinline.QListNGOsWithLatestNeed {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	return &directoryRowsIterator{rows: d.rows}, nil
}

type directoryRowsIterator struct {
	rows []directoryRow
	idx  int
}

func (it *directoryRowsIterator) Next() bool {
	if it.idx >= len(it.rows) {
		return false
	}
	it.idx++
	return true
}

func (it *directoryRowsIterator) Scan(dest ...any) error {
	if it.idx == 0 || it.idx > len(it.rows) {
		return pgx.ErrNoRows
	}
	if len(dest) != 12 {
		return fmt.Errorf("unexpected scan args: %d", len(dest))
	}
	row := it.rows[it.idx-1]
	*(dest[0].(*int64)) = row.id
	*(dest[1].(*string)) = row.name
	*(dest[2].(*string)) = row.city
	*(dest[3].(*string)) = row.zone
	*(dest[4].(*string)) = row.categories
	*(dest[5].(*bool)) = row.hasPickup
	*(dest[6].(*int)) = row.currentLoad
	return nil
}

func (it *directoryRowsIterator) Close()                                       {}
func (it *directoryRowsIterator) Err() error                                   { return nil }
func (it *directoryRowsIterator) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (it *directoryRowsIterator) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (it *directoryRowsIterator) Values() ([]any, error)                       { return nil, nil }
func (it *directoryRowsIterator) RawValues() [][]byte                          { return nil }
func (it *directoryRowsIterator) Conn() *pgx.Conn                              { return nil }

func TestNGOsPublicList_EmptyDirectoryIsEmptyArray(t *testing.T) {
	app := &App{SQL: &directorySQL{}}

	req := httptest.NewRequest("GET", "/v1/ngos", nil)
	rr := httptest.NewRecorder()

	app.NGOsPublicList(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Items == nil {
		t.Fatalf("expected an empty array, got null: %s", rr.Body.String())
	}
	if len(payload.Items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(payload.Items))
	}
}

func TestNGOsPublicList_NGOWithoutActiveNeed(t *testing.T) {
	app := &App{SQL: &directorySQL{rows: []directoryRow{{
		id:          1,
		name:        "Edhi Foundation",
		city:        "Karachi",
		zone:        "Kharadar",
		categories:  "Food,Clothes",
		hasPickup:   true,
		currentLoad: 2,
	}}}}

	req := httptest.NewRequest("GET", "/v1/ngos", nil)
	rr := httptest.NewRecorder()

	app.NGOsPublicList(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(payload.Items))
	}
	item := payload.Items[0]
	if item["name"] != "Edhi Foundation" {
		t.Fatalf("unexpected name: %#v", item["name"])
	}
	if _, ok := item["latest_need"]; ok {
		t.Fatalf("expected no latest_need for an NGO without active needs")
	}
}
