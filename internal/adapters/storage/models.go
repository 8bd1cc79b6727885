package storage

import "time"

// HistoryModel is the GORM model for the history table
type HistoryModel struct {
	CreatedAt time.Time `gorm:"not null;index:idx_created_at"`
	Error     string    `gorm:"not null;default:''"`
	Failures  int       `gorm:"not null;default:0"`
	ID        string    `gorm:"primaryKey"`
	Kind      string    `gorm:"not null;default:''"`
	Name      string    `gorm:"not null;index:idx_name"`
	Operation string    `gorm:"not null;check:operation IN ('stash','pop','clear')"`
	Windows   int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (HistoryModel) TableName() string { return "history" }
