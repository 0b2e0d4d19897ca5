package model

import "time"

// Status is a free-text update posted by a user.
type Status struct {
	StatusID  string `gorm:"column:status_id;primaryKey"`
	UserID    string `gorm:"column:user_id;not null;index"`
	Text      string `gorm:"column:status_text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Status) TableName() string { return "statuses" }
