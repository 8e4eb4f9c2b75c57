package models

import "time"

type Employee struct {
	UID                  string    `gorm:"primaryKey;type:varchar(36)" json:"uid"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name                 string    `gorm:"not null" json:"name"`
	FirstLastName        string    `json:"firstLastName"`
	SecondLastName       string    `json:"secondLastName"`
	Email                string    `gorm:"unique;not null" json:"email"`
	PhoneNumber          string    `json:"phoneNumber"`
	Address              string    `json:"address"`
	SocialSecurityNumber string    `json:"socialSecurityNumber"`
	Curp                 string    `json:"curp"`
	Rfc                  string    `json:"rfc"`
	EmergencyNumberOne   string    `json:"emergencyNumberOne"`
	EmergencyNumberTwo   string    `json:"emergencyNumberTwo"`
	EmployeeCode         string    `json:"employeeId"`
	HiringDate           time.Time `gorm:"not null" json:"hiringDate"`
	Birthday             time.Time `json:"birthday"`
	Bank                 string    `json:"bank"`
	BankAccount          string    `json:"bankAccount"`

	Vacations   []Vacation   `json:"vacations,omitempty" gorm:"foreignKey:UID;references:UID"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"foreignKey:UID;references:UID"`
}
