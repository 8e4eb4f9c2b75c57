package dto

// VacationDaysRequest là DTO cho thao tác ghi đè số ngày phép.
type VacationDaysRequest struct {
	Days int `json:"days" binding:"required"`
}

// VacationFilter là tham số lọc danh sách bản ghi phép.
type VacationFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}
