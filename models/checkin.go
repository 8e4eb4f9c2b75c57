package models

import "time"

type CheckIn struct {
	ID   string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID  string    `gorm:"index;type:varchar(36);not null" json:"uid"`
	Date time.Time `gorm:"not null" json:"date"`
}
