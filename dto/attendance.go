package dto

// AttendanceRequest là DTO cho một dòng công.
type AttendanceRequest struct {
	ID      string `json:"id"`
	UID     string `json:"uid" binding:"required"`
	Date    string `json:"date" binding:"required"`
	In      string `json:"in"`
	Out     string `json:"out"`
	Summary string `json:"summary"`
}

// AttendanceCloseRequest là DTO chốt ngày công: giờ ra và tóm tắt công việc.
type AttendanceCloseRequest struct {
	Out     string `json:"out" binding:"required"`
	Summary string `json:"summary"`
}

// AttendanceBatchRequest là DTO cho thao tác ghi nhiều dòng công một lần.
type AttendanceBatchRequest struct {
	Attendances []AttendanceRequest `json:"attendances" binding:"required"`
}

// AttendanceFilter là tham số lọc bảng công.
type AttendanceFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}
