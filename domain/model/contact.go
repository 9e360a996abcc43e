package model

import "time"

// Contact represents a stored name/email pair
// The ID is assigned by the database and is never reused or changed
type Contact struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
