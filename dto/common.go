package dto

import (
	"time"

	"hrm/errors"
)

// FileData là file đính kèm gửi lên dạng data URI base64.
type FileData struct {
	Name string `json:"name" binding:"required"`
	Data string `json:"data" binding:"required"`
}

// DateRangeQuery là cặp tham số lọc theo ngày trên query string.
type DateRangeQuery struct {
	Gte string `form:"gte"`
	Lte string `form:"lte"`
}

// ParseDateRange chuyển cặp gte/lte dạng chuỗi thành *time.Time, nil khi bỏ trống.
func (q DateRangeQuery) ParseDateRange() (*time.Time, *time.Time, error) {
	var gte, lte *time.Time

	if q.Gte != "" {
		t, err := time.Parse(time.RFC3339, q.Gte)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Tham số gte không hợp lệ", err)
		}
		gte = &t
	}
	if q.Lte != "" {
		t, err := time.Parse(time.RFC3339, q.Lte)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Tham số lte không hợp lệ", err)
		}
		lte = &t
	}
	return gte, lte, nil
}
