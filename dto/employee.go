package dto

import "hrm/models"

// EmployeeRequest là DTO cho yêu cầu tạo mới hoặc cập nhật nhân viên.
type EmployeeRequest struct {
	Name                 string `json:"name" binding:"required"`
	FirstLastName        string `json:"firstLastName"`
	SecondLastName       string `json:"secondLastName"`
	Email                string `json:"email" binding:"required,email"`
	PhoneNumber          string `json:"phoneNumber"`
	Address              string `json:"address"`
	SocialSecurityNumber string `json:"socialSecurityNumber"`
	Curp                 string `json:"curp"`
	Rfc                  string `json:"rfc"`
	EmergencyNumberOne   string `json:"emergencyNumberOne"`
	EmergencyNumberTwo   string `json:"emergencyNumberTwo"`
	EmployeeCode         string `json:"employeeId"`
	HiringDate           string `json:"hiringDate" binding:"required"`
	Birthday             string `json:"birthday"`
	Bank                 string `json:"bank"`
	BankAccount          string `json:"bankAccount"`
	Role                 int    `json:"role"`

	// Dữ liệu khởi tạo khi tạo mới
	VacationDays  int        `json:"vacationDays"`
	PaymentAmount int64      `json:"paymentAmount"`
	Files         []FileData `json:"files"`
}

// EmployeeResponse là hồ sơ nhân viên kèm ngày phép hiện hành và URL file.
type EmployeeResponse struct {
	models.Employee
	Role          int               `json:"role"`
	Days          int               `json:"days"`
	AvailableDays int               `json:"availableDays"`
	Files         map[string]string `json:"files"`
}

// EmployeeListItem là dòng rút gọn cho danh sách nhân viên.
type EmployeeListItem struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employeeId"`
}

// EmployeeListQuery là tham số lọc danh sách nhân viên.
type EmployeeListQuery struct {
	Search string `form:"search"`
}
