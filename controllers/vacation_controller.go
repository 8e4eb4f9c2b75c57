package controllers

import (
	"errors"
	"time"

	"hrm/config"
	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"

	"github.com/gin-gonic/gin"
)

// ListVacations trả về bản ghi phép theo nhân viên và khoảng ngày.
func ListVacations(c *gin.Context) {
	var filter dto.VacationFilter
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

	vacations, err := vacationService.List(uid, gte, lte)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, vacations)
}

// GetCurrentVacation trả về bản ghi phép của năm thâm niên hiện hành.
// Nhân viên thường chỉ xem được của chính mình.
func GetCurrentVacation(c *gin.Context) {
	uid := c.Param("uid")

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, uid) {
		response.Forbidden(c)
		return
	}

	var employee models.Employee
	if err := config.DB.Where("uid = ?", uid).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	vacation, err := vacationService.CurrentRecord(uid, employee.HiringDate, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, vacation)
}

// UpsertVacationDays ghi đè số ngày phép của năm hiện hành cho một nhân viên.
func UpsertVacationDays(c *gin.Context) {
	uid := c.Param("uid")

	var input dto.VacationDaysRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Days < 0 {
		response.ValidationError(c, "Số ngày phép không được âm")
		return
	}

	var employee models.Employee
	if err := config.DB.Where("uid = ?", uid).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	vacation, err := vacationService.UpsertDays(uid, employee.HiringDate, input.Days)
	if err != nil {
		if errors.Is(err, apperrors.ErrVacationConflict) {
			response.Conflict(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, vacation)
}
