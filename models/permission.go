package models

import "time"

type Permission struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID         string    `gorm:"index;type:varchar(36);not null" json:"uid"`
	Type        string    `gorm:"not null" json:"type"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Status      string    `gorm:"default:PENDING" json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
