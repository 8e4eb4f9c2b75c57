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

// CreateExpense ghi nhận một lần mượn thẻ công ty.
func CreateExpense(c *gin.Context) {
	var input dto.ExpenseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	cardDateOut, err := time.Parse(time.RFC3339, input.CardDateOut)
	if err != nil {
		response.ValidationError(c, "Ngày mượn thẻ không hợp lệ")
		return
	}
	cardDateIn, err := time.Parse(time.RFC3339, input.CardDateIn)
	if err != nil {
		response.ValidationError(c, "Ngày trả thẻ không hợp lệ")
		return
	}
	if cardDateIn.Before(cardDateOut) {
		response.ValidationError(c, "Ngày trả thẻ phải sau ngày mượn")
		return
	}

	expense := models.Expense{
		ID:          uuid.NewString(),
		UID:         input.UID,
		Folio:       input.Folio,
		Concept:     input.Concept,
		CardDateOut: cardDateOut,
		CardDateIn:  cardDateIn,
		Amount:      input.Amount,
		Tax:         input.Tax,
		Subtotal:    input.Subtotal,
		FiscalID:    input.FiscalID,
		Rfc:         input.Rfc,
		Company:     input.Company,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, expense)
}

// ListExpenses trả về danh sách chi tiêu thẻ theo nhân viên và khoảng ngày.
func ListExpenses(c *gin.Context) {
	var filter dto.ExpenseFilter
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

	query := config.DB.Model(&models.Expense{}).Order("card_date_out desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if gte != nil {
		query = query.Where("card_date_out >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("card_date_out <= ?", *lte)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, expenses)
}

// GetExpense trả về một bản ghi chi tiêu.
func GetExpense(c *gin.Context) {
	id := c.Param("id")

	var expense models.Expense
	if err := config.DB.Where("id = ?", id).First(&expense).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, expense.UID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, expense)
}

// UpdateExpense ghi đè nội dung một bản ghi chi tiêu.
func UpdateExpense(c *gin.Context) {
	id := c.Param("id")

	var input dto.ExpenseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	cardDateOut, err := time.Parse(time.RFC3339, input.CardDateOut)
	if err != nil {
		response.ValidationError(c, "Ngày mượn thẻ không hợp lệ")
		return
	}
	cardDateIn, err := time.Parse(time.RFC3339, input.CardDateIn)
	if err != nil {
		response.ValidationError(c, "Ngày trả thẻ không hợp lệ")
		return
	}
	if cardDateIn.Before(cardDateOut) {
		response.ValidationError(c, "Ngày trả thẻ phải sau ngày mượn")
		return
	}

	res := config.DB.Model(&models.Expense{}).Where("id = ?", id).Updates(map[string]interface{}{
		"folio":         input.Folio,
		"concept":       input.Concept,
		"card_date_out": cardDateOut,
		"card_date_in":  cardDateIn,
		"amount":        input.Amount,
		"tax":           input.Tax,
		"subtotal":      input.Subtotal,
		"fiscal_id":     input.FiscalID,
		"rfc":           input.Rfc,
		"company":       input.Company,
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

// DeleteExpense xóa một bản ghi chi tiêu.
func DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Where("id = ?", id).Delete(&models.Expense{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
