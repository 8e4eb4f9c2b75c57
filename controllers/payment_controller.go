package controllers

import (
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

// CreatePayment tạo phiếu chi lương, kèm biên nhận nếu có.
func CreatePayment(c *gin.Context) {
	var input dto.PaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	payment := models.Payment{
		ID:     uuid.NewString(),
		UID:    input.UID,
		Amount: input.Amount,
		Date:   date,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.Receipt != nil {
		mimeType, data, err := validator.ValidateFileData(input.Receipt.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), "payments/"+payment.ID, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, payment)
}

// ListPayments trả về phiếu chi kèm cờ đã nộp biên nhận hay chưa.
func ListPayments(c *gin.Context) {
	var filter dto.PaymentFilter
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

	query := config.DB.Model(&models.Payment{}).Order("date desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		exists, err := storageService.Exists(c.Request.Context(), "payments/"+payment.ID)
		if err != nil {
			exists = false
		}
		results = append(results, dto.PaymentResponse{
			Payment:      payment,
			ExistReceipt: exists,
		})
	}

	response.Success(c, results)
}

// UploadReceipt cho nhân viên nộp biên nhận đã ký cho phiếu chi của mình.
func UploadReceipt(c *gin.Context) {
	id := c.Param("id")

	var input dto.FileData
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var payment models.Payment
	if err := config.DB.Where("id = ?", id).First(&payment).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, payment.UID) {
		response.Forbidden(c)
		return
	}

	mimeType, data, err := validator.ValidateFileData(input.Data)
	if err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	if err := storageService.Save(c.Request.Context(), "payments/"+payment.ID, data, mimeType); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetReceipt trả về URL đọc biên nhận của một phiếu chi.
func GetReceipt(c *gin.Context) {
	id := c.Param("id")

	var payment models.Payment
	if err := config.DB.Where("id = ?", id).First(&payment).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canAccessRecord(c.GetString("uid"), c.GetInt("userRole"), payment.UID) {
		response.Forbidden(c)
		return
	}

	url, err := storageService.SignedReadURL(c.Request.Context(), "payments/"+payment.ID, signedURLTTL)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.PaymentResponse{
		Payment:      payment,
		ExistReceipt: url != "",
		ReceiptURL:   url,
	})
}

// DeletePayment xóa phiếu chi kèm biên nhận của nó.
func DeletePayment(c *gin.Context) {
	id := c.Param("id")

	var payment models.Payment
	if err := config.DB.Where("id = ?", id).First(&payment).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := storageService.DeleteByPrefix(c.Request.Context(), "payments/"+payment.ID); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(&models.Payment{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
