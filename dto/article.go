package dto

import "hrm/models"

// ArticleRequest là DTO cho yêu cầu ghi nhận tài sản bàn giao.
type ArticleRequest struct {
	UID    string    `json:"uid" binding:"required"`
	Name   string    `json:"name" binding:"required"`
	Serial string    `json:"serial"`
	Date   string    `json:"date" binding:"required"`
	Photo  *FileData `json:"photo"`
}

// ArticleResponse là tài sản kèm URL ảnh bàn giao.
type ArticleResponse struct {
	models.Article
	PhotoURL string `json:"photoUrl,omitempty"`
}
