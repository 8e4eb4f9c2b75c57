package controllers

import (
	"fmt"
	"time"

	"hrm/config"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateTransaction tạo giao dịch kèm hóa đơn đính kèm.
func CreateTransaction(c *gin.Context) {
	var input dto.TransactionRequest
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

	transaction := models.Transaction{
		ID:       uuid.NewString(),
		UID:      input.UID,
		Folio:    input.Folio,
		Concept:  input.Concept,
		Date:     date,
		Category: pq.StringArray(input.Category),
		Amount:   input.Amount,
		Tax:      input.Tax,
		Subtotal: input.Subtotal,
		FiscalID: input.FiscalID,
		Rfc:      input.Rfc,
		Company:  input.Company,
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := saveInvoiceFiles(c, transaction.ID, input.Invoices); err != nil {
		return
	}

	response.Success(c, transaction)
}

// saveInvoiceFiles lưu hóa đơn theo số thứ tự để đọc lại được không cần
// danh sách file; lỗi đã được trả lời cho client trước khi return.
func saveInvoiceFiles(c *gin.Context, transactionID string, invoices []dto.FileData) error {
	for i, invoice := range invoices {
		mimeType, data, err := validator.ValidateFileData(invoice.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return err
		}
		path := fmt.Sprintf("invoices/%s/%d", transactionID, i)
		if err := storageService.Save(c.Request.Context(), path, data, mimeType); err != nil {
			response.ServerError(c)
			return err
		}
	}
	return nil
}

// GetTransaction trả về một giao dịch kèm URL các hóa đơn của nó.
func GetTransaction(c *gin.Context) {
	id := c.Param("id")

	var transaction models.Transaction
	if err := config.DB.Where("id = ?", id).First(&transaction).Error; err != nil {
		response.NotFound(c)
		return
	}

	var invoiceURLs []string
	for i := 0; ; i++ {
		path := fmt.Sprintf("invoices/%s/%d", transaction.ID, i)
		url, err := storageService.SignedReadURL(c.Request.Context(), path, signedURLTTL)
		if err != nil || url == "" {
			break
		}
		invoiceURLs = append(invoiceURLs, url)
	}

	response.Success(c, gin.H{
		"transaction": transaction,
		"invoiceUrls": invoiceURLs,
	})
}

// UpdateTransaction ghi đè nội dung một giao dịch; hóa đơn gửi kèm được
// lưu đè lên hóa đơn cũ.
func UpdateTransaction(c *gin.Context) {
	id := c.Param("id")

	var input dto.TransactionRequest
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

	res := config.DB.Model(&models.Transaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"folio":     input.Folio,
		"concept":   input.Concept,
		"date":      date,
		"category":  pq.StringArray(input.Category),
		"amount":    input.Amount,
		"tax":       input.Tax,
		"subtotal":  input.Subtotal,
		"fiscal_id": input.FiscalID,
		"rfc":       input.Rfc,
		"company":   input.Company,
	})
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	if err := saveInvoiceFiles(c, id, input.Invoices); err != nil {
		return
	}

	response.Success(c, nil)
}

// ListTransactions lọc theo khoảng ngày và danh mục: chỉ cần một danh mục
// của giao dịch trùng với danh mục lọc là khớp.
func ListTransactions(c *gin.Context) {
	var filter dto.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gte, lte, err := filter.ParseDateRange()
	if err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	query := config.DB.Model(&models.Transaction{}).Order("date desc")
	if filter.UID != "" {
		query = query.Where("uid = ?", filter.UID)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}
	if len(filter.Category) > 0 {
		query = query.Where("category && ?", pq.StringArray(filter.Category))
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, transactions)
}

// DeleteTransaction xóa giao dịch kèm hóa đơn của nó.
func DeleteTransaction(c *gin.Context) {
	id := c.Param("id")

	var transaction models.Transaction
	if err := config.DB.Where("id = ?", id).First(&transaction).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := storageService.DeleteByPrefix(c.Request.Context(), "invoices/"+transaction.ID+"/"); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
