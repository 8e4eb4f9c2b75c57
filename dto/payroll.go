package dto

import "hrm/models"

// PayrollRequest là DTO cho yêu cầu lưu phiếu lương.
type PayrollRequest struct {
	UID  string    `json:"uid" binding:"required"`
	Date string    `json:"date" binding:"required"`
	Type string    `json:"type" binding:"required"`
	File *FileData `json:"file"`
}

// PayrollResponse là phiếu lương kèm URL file.
type PayrollResponse struct {
	models.Payroll
	FileURL string `json:"fileUrl,omitempty"`
}

// PayrollFilter là tham số lọc phiếu lương.
type PayrollFilter struct {
	UID  string `form:"uid"`
	Type string `form:"type"`
	DateRangeQuery
}
