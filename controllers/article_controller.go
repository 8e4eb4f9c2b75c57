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

// CreateArticle ghi nhận tài sản bàn giao cho nhân viên, kèm ảnh nếu có.
func CreateArticle(c *gin.Context) {
	var input dto.ArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	article := models.Article{
		ID:     uuid.NewString(),
		UID:    input.UID,
		Name:   input.Name,
		Serial: input.Serial,
		Date:   date,
	}
	if err := config.DB.Create(&article).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.Photo != nil {
		mimeType, data, err := validator.ValidateFileData(input.Photo.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), "articles/"+article.ID, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, article)
}

// ListArticles trả về tài sản của một nhân viên kèm URL ảnh bàn giao.
func ListArticles(c *gin.Context) {
	uid := c.Query("uid")

	query := config.DB.Model(&models.Article{}).Order("date desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		url, _ := storageService.SignedReadURL(c.Request.Context(), "articles/"+article.ID, signedURLTTL)
		results = append(results, dto.ArticleResponse{
			Article:  article,
			PhotoURL: url,
		})
	}

	response.Success(c, results)
}

// GetArticle trả về một tài sản kèm URL ảnh bàn giao.
func GetArticle(c *gin.Context) {
	id := c.Param("id")

	var article models.Article
	if err := config.DB.Where("id = ?", id).First(&article).Error; err != nil {
		response.NotFound(c)
		return
	}

	url, _ := storageService.SignedReadURL(c.Request.Context(), "articles/"+article.ID, signedURLTTL)

	response.Success(c, dto.ArticleResponse{
		Article:  article,
		PhotoURL: url,
	})
}

// UpdateArticle ghi đè thông tin một tài sản; ảnh gửi kèm thay ảnh cũ.
func UpdateArticle(c *gin.Context) {
	id := c.Param("id")

	var input dto.ArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	res := config.DB.Model(&models.Article{}).Where("id = ?", id).Updates(map[string]interface{}{
		"uid":    input.UID,
		"name":   input.Name,
		"serial": input.Serial,
		"date":   date,
	})
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	if input.Photo != nil {
		mimeType, data, err := validator.ValidateFileData(input.Photo.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), "articles/"+id, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, nil)
}

// DeleteArticle xóa tài sản kèm ảnh của nó.
func DeleteArticle(c *gin.Context) {
	id := c.Param("id")

	var article models.Article
	if err := config.DB.Where("id = ?", id).First(&article).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := storageService.DeleteByPrefix(c.Request.Context(), "articles/"+article.ID); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(&models.Article{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
