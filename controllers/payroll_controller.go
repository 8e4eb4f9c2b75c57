package controllers

import (
	"fmt"
	"time"

	"hrm/config"
	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePayroll lưu phiếu lương hoặc phiếu thưởng của một kỳ, kèm file PDF.
func CreatePayroll(c *gin.Context) {
	var input dto.PayrollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Type != constants.PayrollTypeReceipt && input.Type != constants.PayrollTypeBonus {
		response.ValidationError(c, "Loại phiếu lương không hợp lệ")
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	payroll := models.Payroll{
		ID:   uuid.NewString(),
		UID:  input.UID,
		Date: date,
		Type: input.Type,
	}
	if err := config.DB.Create(&payroll).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.File != nil {
		mimeType, data, err := validator.ValidateFileData(input.File.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		path := fmt.Sprintf("payrolls/%s/%s", payroll.UID, payroll.ID)
		if err := storageService.Save(c.Request.Context(), path, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, payroll)
}

// ListPayrolls trả về phiếu lương theo nhân viên, loại và khoảng ngày.
func ListPayrolls(c *gin.Context) {
	var filter dto.PayrollFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gte, lte, err := filter.ParseDateRange()
	if err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")

	uid := filter.UID
	if callerRole == constants.RoleEmployee {
		uid = callerUID
	}

	query := config.DB.Model(&models.Payroll{}).Order("date desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}

	var payrolls []models.Payroll
	if err := query.Find(&payrolls).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.PayrollResponse, 0, len(payrolls))
	for _, payroll := range payrolls {
		path := fmt.Sprintf("payrolls/%s/%s", payroll.UID, payroll.ID)
		url, _ := storageService.SignedReadURL(c.Request.Context(), path, signedURLTTL)
		results = append(results, dto.PayrollResponse{
			Payroll: payroll,
			FileURL: url,
		})
	}

	response.Success(c, results)
}

// GetPayroll trả về một phiếu lương kèm URL đọc file.
func GetPayroll(c *gin.Context) {
	id := c.Param("id")

	var payroll models.Payroll
	if err := config.DB.Where("id = ?", id).First(&payroll).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, payroll.UID) {
		response.Forbidden(c)
		return
	}

	path := fmt.Sprintf("payrolls/%s/%s", payroll.UID, payroll.ID)
	url, err := storageService.SignedReadURL(c.Request.Context(), path, signedURLTTL)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.PayrollResponse{
		Payroll: payroll,
		FileURL: url,
	})
}

// DeletePayroll xóa một phiếu lương của chính mình kèm file của nó.
func DeletePayroll(c *gin.Context) {
	id := c.Param("id")

	var payroll models.Payroll
	if err := config.DB.Where("id = ?", id).First(&payroll).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, payroll.UID) {
		response.Forbidden(c)
		return
	}

	path := fmt.Sprintf("payrolls/%s/%s", payroll.UID, payroll.ID)
	if err := storageService.DeleteByPrefix(c.Request.Context(), path); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(&models.Payroll{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
