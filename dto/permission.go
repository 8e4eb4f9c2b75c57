package dto

// PermissionRequest là DTO cho yêu cầu tạo đơn nghỉ.
type PermissionRequest struct {
	UID         string    `json:"uid"`
	Type        string    `json:"type" binding:"required"`
	StartDate   string    `json:"startDate" binding:"required"`
	EndDate     string    `json:"endDate" binding:"required"`
	Description string    `json:"description"`
	File        *FileData `json:"file"`
}

// PermissionStatusRequest là DTO cho HR duyệt hoặc từ chối đơn nghỉ.
type PermissionStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	AvailableDays *int   `json:"availableDays"`
}

// PermissionFilter là tham số lọc danh sách đơn nghỉ theo tháng và nhân viên.
type PermissionFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}
