package models

import "time"

type Contract struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Client        string     `gorm:"not null" json:"client"`
	Amount        int64      `gorm:"not null" json:"amount"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Indeterminate bool       `gorm:"default:false" json:"indeterminate"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
