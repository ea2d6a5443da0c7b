package entities

type ShoppingItem struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// NULL for items created by meal-plan aggregation, which runs without
	// an owner identity.
	UserID    *string `gorm:"type:uuid" json:"user_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  string  `json:"quantity,omitempty"` // free text, e.g. "200 g"
	Category  string  `json:"category"`           // "urgent", "this-week", "other"
	Generated bool    `json:"generated"`          // created by meal-plan aggregation
	Done      bool    `json:"done"`

	Timestamp
}
