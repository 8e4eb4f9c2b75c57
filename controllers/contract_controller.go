package controllers

import (
	"time"

	"hrm/config"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func contractDates(input dto.ContractRequest) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if input.StartDate != "" {
		t, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return nil, nil, err
		}
		startDate = &t
	}
	if input.EndDate != "" {
		t, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return nil, nil, err
		}
		endDate = &t
	}
	return startDate, endDate, nil
}

// CreateContract tạo hợp đồng khách hàng; hợp đồng vô thời hạn bỏ trống ngày.
func CreateContract(c *gin.Context) {
	var input dto.ContractRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	startDate, endDate, err := contractDates(input)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	if !input.Indeterminate && (startDate == nil || endDate == nil) {
		response.ValidationError(c, "Hợp đồng có thời hạn phải có ngày bắt đầu và kết thúc")
		return
	}

	contract := models.Contract{
		ID:            uuid.NewString(),
		Client:        input.Client,
		Amount:        input.Amount,
		StartDate:     startDate,
		EndDate:       endDate,
		Indeterminate: input.Indeterminate,
	}
	if err := config.DB.Create(&contract).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contract)
}

// ListContracts lọc theo khách hàng và khoảng ngày; hợp đồng vô thời hạn
// luôn khớp mọi khoảng ngày.
func ListContracts(c *gin.Context) {
	var filter dto.ContractFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gte, lte, err := filter.ParseDateRange()
	if err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	query := config.DB.Model(&models.Contract{}).Order("created_at desc")
	if filter.Client != "" {
		query = query.Where("client ILIKE ?", "%"+filter.Client+"%")
	}
	if gte != nil {
		query = query.Where("indeterminate OR end_date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("indeterminate OR start_date <= ?", *lte)
	}

	var contracts []models.Contract
	if err := query.Find(&contracts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contracts)
}

// UpdateContract cập nhật một hợp đồng.
func UpdateContract(c *gin.Context) {
	id := c.Param("id")

	var input dto.ContractRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, endDate, err := contractDates(input)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	res := config.DB.Model(&models.Contract{}).Where("id = ?", id).Updates(map[string]interface{}{
		"client":        input.Client,
		"amount":        input.Amount,
		"start_date":    startDate,
		"end_date":      endDate,
		"indeterminate": input.Indeterminate,
	})
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}

// DeleteContract xóa một hợp đồng.
func DeleteContract(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Where("id = ?", id).Delete(&models.Contract{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
