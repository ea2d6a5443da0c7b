package entities

type Task struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"type:uuid" json:"user_id"`
	Title         string `json:"title"`
	ScheduledTime string `json:"scheduled_time,omitempty"` // "14:30", empty when unscheduled
	Date          string `gorm:"index" json:"date"`        // "2026-01-09"
	Category      string `json:"category"`                 // "training", "household", "work", "social", "other"
	Priority      string `json:"priority"`                 // "high", "medium", "low"
	Done          bool   `json:"done"`

	Timestamp
}
