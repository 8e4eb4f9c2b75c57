package dto

import "hrm/models"

// PaymentRequest là DTO cho yêu cầu tạo phiếu chi lương.
type PaymentRequest struct {
	UID     string    `json:"uid" binding:"required"`
	Amount  int64     `json:"amount" binding:"required"`
	Date    string    `json:"date" binding:"required"`
	Receipt *FileData `json:"receipt"`
}

// PaymentFilter là tham số lọc danh sách phiếu chi.
type PaymentFilter struct {
	UID string `form:"uid"`
	DateRangeQuery
}

// PaymentResponse là phiếu chi kèm cờ biên nhận đã nộp hay chưa.
type PaymentResponse struct {
	models.Payment
	ExistReceipt bool   `json:"existReceipt"`
	ReceiptURL   string `json:"receiptUrl,omitempty"`
}
