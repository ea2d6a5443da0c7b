package shopping

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
)

type aggregatedIngredient struct {
	Key      string // lowercased ingredient name
	Quantity float64
	Unit     string
}

// aggregateIngredients merges the non-optional ingredients of the recipes
// referenced by the given meals. Ingredients sharing a merge key (the
// lowercased name) and the exact same unit have their quantities summed.
//
// When two units collide under one key, the legacy behavior keeps only the
// later entry. With splitUnits set, colliding units are kept as separate
// entries keyed by (name, unit) instead. No unit conversion is attempted
// either way.
//
// Meals whose recipe reference does not resolve are skipped and counted,
// so callers can surface data drift without failing the whole run.
func aggregateIngredients(meals []entities.Meal, recipes map[uint]domain.Recipe, splitUnits bool) ([]aggregatedIngredient, int) {
	merged := []aggregatedIngredient{}
	index := map[string]int{} // merge key -> position in merged
	skipped := 0

	for i := range meals {
		if meals[i].RecipeID == nil {
			continue
		}
		r, ok := recipes[*meals[i].RecipeID]
		if !ok {
			skipped++
			continue
		}

		for _, ing := range r.Ingredients {
			if ing.Optional {
				continue
			}

			key := strings.ToLower(ing.Name)
			mapKey := key
			if splitUnits {
				mapKey = key + "\x00" + ing.Unit
			}

			pos, exists := index[mapKey]
			switch {
			case exists && merged[pos].Unit == ing.Unit:
				merged[pos].Quantity += ing.Quantity
			case exists:
				// Unit mismatch under the legacy key: last entry wins.
				merged[pos].Quantity = ing.Quantity
				merged[pos].Unit = ing.Unit
			default:
				index[mapKey] = len(merged)
				merged = append(merged, aggregatedIngredient{
					Key:      key,
					Quantity: ing.Quantity,
					Unit:     ing.Unit,
				})
			}
		}
	}

	return merged, skipped
}

// looseMatch reports whether one name contains the other,
// case-insensitively. Used to decide that an aggregated ingredient is
// already covered by an existing shopping item.
func looseMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// itemName turns a merge key back into a display name by upper-casing the
// first rune.
func itemName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError && size <= 1 {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}

// quantityText renders an aggregated quantity as "200 g" or "1.5 tbsp",
// without trailing zeros.
func quantityText(quantity float64, unit string) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64) + " " + unit
}
