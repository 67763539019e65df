package services

import (
	"context"
	"errors"
	"strings"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"
)

// Suggestion sources.
const (
	SourceHistory = "history"
	SourceRules   = "rules"
	SourceDefault = "default"
)

// staticRules maps description keywords to categories.
var staticRules = map[string]models.Category{
	// FOOD
	"grocery": models.CategoryFood, "groceries": models.CategoryFood, "supermarket": models.CategoryFood,
	"restaurant": models.CategoryFood, "cafe": models.CategoryFood, "coffee": models.CategoryFood,
	"lunch": models.CategoryFood, "dinner": models.CategoryFood, "breakfast": models.CategoryFood,
	"pizza": models.CategoryFood, "bakery": models.CategoryFood, "uber eats": models.CategoryFood,
	"doordash": models.CategoryFood,

	// TRANSPORT
	"uber": models.CategoryTransport, "lyft": models.CategoryTransport, "taxi": models.CategoryTransport,
	"bus": models.CategoryTransport, "train": models.CategoryTransport, "metro": models.CategoryTransport,
	"subway": models.CategoryTransport, "fuel": models.CategoryTransport, "gas station": models.CategoryTransport,
	"parking": models.CategoryTransport, "toll": models.CategoryTransport, "flight": models.CategoryTransport,

	// ENTERTAINMENT
	"netflix": models.CategoryEntertainment, "spotify": models.CategoryEntertainment,
	"cinema": models.CategoryEntertainment, "movie": models.CategoryEntertainment,
	"concert": models.CategoryEntertainment, "disney": models.CategoryEntertainment,
	"steam": models.CategoryEntertainment, "game": models.CategoryEntertainment,

	// SHOPPING
	"amazon": models.CategoryShopping, "clothes": models.CategoryShopping, "shoes": models.CategoryShopping,
	"ikea": models.CategoryShopping, "mall": models.CategoryShopping, "electronics": models.CategoryShopping,

	// BILLS
	"rent": models.CategoryBills, "electricity": models.CategoryBills, "water bill": models.CategoryBills,
	"internet": models.CategoryBills, "phone": models.CategoryBills, "insurance": models.CategoryBills,
	"mortgage": models.CategoryBills, "utilities": models.CategoryBills,

	// HEALTHCARE
	"pharmacy": models.CategoryHealthcare, "doctor": models.CategoryHealthcare,
	"dentist": models.CategoryHealthcare, "hospital": models.CategoryHealthcare,
	"medicine": models.CategoryHealthcare, "clinic": models.CategoryHealthcare,

	// EDUCATION
	"tuition": models.CategoryEducation, "course": models.CategoryEducation, "book": models.CategoryEducation,
	"udemy": models.CategoryEducation, "school": models.CategoryEducation, "university": models.CategoryEducation,
}

// Categorizer suggests a category for an expense description, preferring
// what the user chose before over the keyword dictionary.
type Categorizer struct {
	labels LabelStore
}

func NewCategorizer(labels LabelStore) *Categorizer {
	return &Categorizer{labels: labels}
}

func NormalizeLabel(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

func (c *Categorizer) Suggest(ctx context.Context, userID, description string) (models.CategorySuggestion, error) {
	label := NormalizeLabel(description)
	if label == "" {
		return models.CategorySuggestion{Category: string(models.CategoryOther), Source: SourceDefault}, nil
	}

	category, err := c.labels.Lookup(ctx, userID, label)
	switch {
	case err == nil && models.IsValidCategory(category):
		return models.CategorySuggestion{Category: category, Source: SourceHistory}, nil
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return models.CategorySuggestion{}, err
	}

	if cat, ok := MatchRule(label); ok {
		return models.CategorySuggestion{Category: string(cat), Source: SourceRules}, nil
	}
	return models.CategorySuggestion{Category: string(models.CategoryOther), Source: SourceDefault}, nil
}

// MatchRule finds the longest keyword contained in label. Ties go to the
// alphabetically first keyword so results do not depend on map order.
func MatchRule(label string) (models.Category, bool) {
	if cat, ok := staticRules[label]; ok {
		return cat, true
	}

	best := ""
	for key := range staticRules {
		if !strings.Contains(label, key) {
			continue
		}
		if len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	if best == "" {
		return "", false
	}
	return staticRules[best], true
}

// Remember records the user's choice; failures are logged, not returned.
func (c *Categorizer) Remember(ctx context.Context, userID, description, category string) {
	label := NormalizeLabel(description)
	if label == "" {
		return
	}
	if err := c.labels.Remember(ctx, userID, label, category); err != nil {
		utils.SafeWarn("[Categorizer] failed to remember label for user %s: %v", userID, err)
	}
}
