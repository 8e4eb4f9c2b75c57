package controllers

import (
	"time"

	"hrm/config"
	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCheckIn chấm công cho chính mình; một ngày chỉ chấm được một lần.
func CreateCheckIn(c *gin.Context) {
	var input dto.CheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày không hợp lệ")
		return
	}

	uid := c.GetString("uid")

	dayStart := time.Date(date.In(config.Location).Year(), date.In(config.Location).Month(), date.In(config.Location).Day(), 0, 0, 0, 0, config.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	if err := config.DB.Model(&models.CheckIn{}).
		Where("uid = ? AND date >= ? AND date < ?", uid, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.BadRequest(c, "Hôm nay đã chấm công rồi")
		return
	}

	checkIn := models.CheckIn{
		ID:   uuid.NewString(),
		UID:  uid,
		Date: date,
	}
	if err := config.DB.Create(&checkIn).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, checkIn)
}

// ListCheckIns trả về lịch sử chấm công theo nhân viên và khoảng ngày.
func ListCheckIns(c *gin.Context) {
	var filter dto.CheckInFilter
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

	query := config.DB.Model(&models.CheckIn{}).Order("date desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}

	var checkIns []models.CheckIn
	if err := query.Find(&checkIns).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, checkIns)
}
