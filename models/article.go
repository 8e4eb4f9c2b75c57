package models

import "time"

// Article là tài sản/thiết bị được giao cho nhân viên.
type Article struct {
	ID     string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID    string    `gorm:"index;type:varchar(36);not null" json:"uid"`
	Name   string    `gorm:"not null" json:"name"`
	Serial string    `json:"serial"`
	Date   time.Time `gorm:"not null" json:"date"`
}
