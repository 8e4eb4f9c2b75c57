package models

import "time"

type Payment struct {
	ID     string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID    string    `gorm:"index;type:varchar(36);not null" json:"uid"`
	Amount int64     `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null" json:"date"`
}
