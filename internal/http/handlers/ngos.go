package handlers

import (
	"net/http"

	"server/internal/sqlinline"
)

// NGOsPublicList is the public directory: every NGO with its most recently
// declared active need, if any.
func (a *App) NGOsPublicList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListNGOsWithLatestNeed)
	if err != nil {
		a.fail(w, err)
		return
	}
	defer rows.Close()

	items := []map[string]any{}
	for rows.Next() {
		var (
			id                          int64
			name, city, zone            string
			categories                  string
			hasPickup                   bool
			currentLoad                 int
			needID                      *int64
			needItem, needCategory      *string
			needRequired, needFulfilled *int
		)
		if err := rows.Scan(&id, &name, &city, &zone, &categories, &hasPickup, &currentLoad,
			&needID, &needItem, &needCategory, &needRequired, &needFulfilled); err != nil {
			a.fail(w, err)
			return
		}
		item := map[string]any{
			"id":                  id,
			"name":                name,
			"city":                city,
			"zone":                zone,
			"accepted_categories": categories,
			"has_pickup":          hasPickup,
			"current_load":        currentLoad,
		}
		if needID != nil {
			remaining := *needRequired - *needFulfilled
			if remaining < 0 {
				remaining = 0
			}
			item["latest_need"] = map[string]any{
				"id":            *needID,
				"item_name":     *needItem,
				"category":      *needCategory,
				"qty_required":  *needRequired,
				"qty_fulfilled": *needFulfilled,
				"qty_remaining": remaining,
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
