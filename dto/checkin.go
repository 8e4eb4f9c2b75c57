package dto

// CheckInRequest là DTO cho yêu cầu chấm công vào.
type CheckInRequest struct {
	Date string `json:"date" binding:"required"`
}

// CheckInFilter là tham số lọc danh sách chấm công.
type CheckInFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}
