package models

import "time"

// Account là tài khoản đăng nhập của nhân viên, tách khỏi hồ sơ Employee.
type Account struct {
	UID       string    `gorm:"primaryKey;type:varchar(36)" json:"uid"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"`
	Role      int       `gorm:"default:0" json:"role"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
}
