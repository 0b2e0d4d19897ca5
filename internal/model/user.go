package model

import "time"

// User is a member of the social network. UserID is assigned by the caller and never changes.
// Deleting a user removes their statuses through the ON DELETE CASCADE constraint on statuses.user_id.
type User struct {
	UserID    string   `gorm:"column:user_id;primaryKey"`
	Email     string   `gorm:"column:user_email"`
	Name      string   `gorm:"column:user_name"`
	LastName  string   `gorm:"column:user_last_name"`
	Statuses  []Status `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
