package entities

type Recipe struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"` // "iranian", "italian", "japanese", "other"
	Servings        int    `json:"servings"`
	PrepTimeMinutes int    `json:"prep_time_minutes"`
	Ingredients     string `gorm:"type:text" json:"-"` // JSON-encoded ingredient list
	Instructions    string `gorm:"type:text" json:"-"` // JSON-encoded step list
	Tags            string `gorm:"type:text" json:"-"` // JSON-encoded tag list

	Timestamp
}
