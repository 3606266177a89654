package workflow

import (
	"regexp"
	"strings"
)

// SubmitInput carries a donor's donation submission.
type SubmitInput struct {
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	Condition    string `json:"condition"`
	Description  string `json:"description"`
	CategoryHint string `json:"category_hint"`
}

// NeedInput carries an admin's need declaration for an NGO.
type NeedInput struct {
	ItemName        string `json:"item_name"`
	Category        string `json:"category"`
	ConditionNeeded string `json:"condition_needed"`
	Details         string `json:"details"`
	QtyRequired     int    `json:"qty_required"`
}

var hasLetter = regexp.MustCompile(`[A-Za-z]`)

// The platform moves physical items only; cash and blood offers are turned
// away at submission with an explanation.
var (
	forbiddenCashWords  = []string{"cash", "money", "zakat", "sadqa", "sadaqa", "donation amount", "fund", "amount"}
	forbiddenBloodWords = []string{"blood", "khoon", "blood donate", "o positive"}
)

// Validate returns every problem with the submission so the donor can fix
// the whole form in one pass.
func (in SubmitInput) Validate() []string {
	var errs []string

	itemName := strings.TrimSpace(in.ItemName)
	if itemName == "" {
		errs = append(errs, "Item name is required.")
	} else if len(itemName) < 3 || !hasLetter.MatchString(itemName) {
		errs = append(errs, "Please enter a meaningful item name (e.g. '10kg potatoes' or 'school bags and books'), not random characters.")
	}

	if in.Quantity <= 0 {
		errs = append(errs, "Quantity must be a positive whole number (e.g. 5, 10, 100).")
	}

	if strings.TrimSpace(in.Condition) == "" {
		errs = append(errs, "Please select the condition of the item.")
	}
	if strings.TrimSpace(in.CategoryHint) == "" {
		errs = append(errs, "Please select a donation category (e.g. Food, Clothes, Education).")
	}

	combined := strings.ToLower(itemName + " " + in.Description)
	if containsAny(combined, forbiddenCashWords) {
		errs = append(errs, "Our system does not process cash/monetary donations. Please donate physical items like food, clothes, books, etc.")
	}
	if containsAny(combined, forbiddenBloodWords) {
		errs = append(errs, "Our system does not process blood donations. Please donate physical items like food, clothes, books, etc.")
	}

	return errs
}

// Validate reports problems with a need declaration.
func (in NeedInput) Validate() []string {
	var errs []string
	if strings.TrimSpace(in.ItemName) == "" {
		errs = append(errs, "Item name is required.")
	}
	if in.QtyRequired < 1 {
		errs = append(errs, "Required quantity must be a positive number.")
	}
	return errs
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
