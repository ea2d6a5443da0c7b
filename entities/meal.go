package entities

type Meal struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Date        string `gorm:"index" json:"date"` // "2026-01-09"
	Slot        string `json:"slot"`              // "breakfast", "lunch", "dinner"
	Description string `json:"description,omitempty"`
	RecipeID    *uint  `json:"recipe_id,omitempty"`
	Done        bool   `json:"done"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}
