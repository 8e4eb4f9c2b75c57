package models

import "time"

type Attendance struct {
	ID      string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID     string     `gorm:"index;type:varchar(36);not null" json:"uid"`
	Date    time.Time  `gorm:"not null" json:"date"`
	In      *time.Time `json:"in"`
	Out     *time.Time `json:"out"`
	Summary string     `json:"summary"`
}
