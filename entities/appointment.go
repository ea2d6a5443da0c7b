package entities

type Appointment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"type:uuid" json:"user_id"`
	Title    string `json:"title"`
	Date     string `gorm:"index" json:"date"` // "2026-01-14"
	Time     string `json:"time,omitempty"`    // "18:00", empty for all-day
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Done     bool   `json:"done"`

	Timestamp
}
