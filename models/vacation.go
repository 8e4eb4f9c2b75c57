package models

import "time"

// Vacation là bản ghi ngày phép hiện hành của một năm thâm niên; cập nhật sẽ
// ghi đè Days/AvailableDays chứ không cộng dồn.
type Vacation struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID           string    `gorm:"index;type:varchar(36);not null" json:"uid"`
	Date          time.Time `gorm:"not null" json:"date"`
	Days          int       `json:"days"`
	AvailableDays int       `json:"availableDays"`
	Version       int       `gorm:"default:0" json:"-"`
}
