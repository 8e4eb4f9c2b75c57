package controllers

import (
	"time"

	"hrm/config"
	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/services/notification"
	"hrm/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// permissionFilePrefix trả về đường dẫn file minh chứng của một đơn nghỉ.
func permissionFilePrefix(permission models.Permission) string {
	if permission.Type == constants.PermissionTypeOccasional {
		return "permissions/occasional/" + permission.ID
	}
	return "permissions/" + permission.ID
}

// canAmendPermission cho biết caller còn sửa được nội dung đơn hay không:
// nhân viên thường chỉ sửa đơn đang chờ duyệt, HR và admin sửa bất cứ lúc nào.
func canAmendPermission(callerRole int, status string) bool {
	if callerRole != constants.RoleEmployee {
		return true
	}
	return status == constants.PermissionStatusPending
}

// CreatePermission tạo đơn nghỉ. Nhân viên thường chỉ tạo cho chính mình,
// HR tạo được cho người khác.
func CreatePermission(c *gin.Context) {
	var input dto.PermissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePermission(&input); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")

	uid := input.UID
	if uid == "" {
		uid = callerUID
	}
	if uid != callerUID && callerRole == constants.RoleEmployee {
		response.Forbidden(c)
		return
	}

	startDate, _ := time.Parse(time.RFC3339, input.StartDate)
	endDate, _ := time.Parse(time.RFC3339, input.EndDate)

	permission := models.Permission{
		ID:          uuid.NewString(),
		UID:         uid,
		Type:        input.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      constants.PermissionStatusPending,
		Description: input.Description,
	}
	if err := config.DB.Create(&permission).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.File != nil {
		mimeType, data, err := validator.ValidateFileData(input.File.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), permissionFilePrefix(permission), data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, permission)
}

// ListPermissions trả về đơn nghỉ theo nhân viên và theo tháng báo cáo.
// Đơn kéo dài nhiều tháng được xếp tháng theo MatchesMonth.
func ListPermissions(c *gin.Context) {
	var filter dto.PermissionFilter
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
		// Nhân viên thường chỉ xem đơn của mình
		uid = callerUID
	}

	query := config.DB.Model(&models.Permission{}).Order("start_date desc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if gte != nil {
		// Cắt thô theo ngày bắt đầu; xếp tháng chính xác do MatchesMonth quyết định
		query = query.Where("start_date >= ?", *gte)
	}

	var permissions []models.Permission
	if err := query.Find(&permissions).Error; err != nil {
		response.ServerError(c)
		return
	}

	matched := make([]models.Permission, 0, len(permissions))
	for _, permission := range permissions {
		if services.MatchesMonth(permission.StartDate, permission.EndDate, gte, lte, config.Location) {
			matched = append(matched, permission)
		}
	}

	response.Success(c, matched)
}

// GetPermission trả về chi tiết đơn nghỉ kèm URL file minh chứng.
func GetPermission(c *gin.Context) {
	id := c.Param("id")

	var permission models.Permission
	if err := config.DB.Where("id = ?", id).First(&permission).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, permission.UID) {
		response.Forbidden(c)
		return
	}

	url, _ := storageService.SignedReadURL(c.Request.Context(), permissionFilePrefix(permission), signedURLTTL)

	response.Success(c, gin.H{
		"permission": permission,
		"fileUrl":    url,
	})
}

// UpdatePermissionStatus cho HR duyệt hoặc từ chối đơn. Duyệt đơn nghỉ phép
// trừ luôn số ngày phép còn lại và phát thông báo realtime.
func UpdatePermissionStatus(c *gin.Context) {
	id := c.Param("id")

	var input dto.PermissionStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Status != constants.PermissionStatusAccepted && input.Status != constants.PermissionStatusRejected {
		response.ValidationError(c, "Trạng thái không hợp lệ")
		return
	}

	var permission models.Permission
	if err := config.DB.Where("id = ?", id).First(&permission).Error; err != nil {
		response.NotFound(c)
		return
	}

	// HR đổi trạng thái được bất cứ lúc nào, kể cả đơn đã chốt
	if err := config.DB.Model(&models.Permission{}).
		Where("id = ?", id).
		Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.Status == constants.PermissionStatusAccepted &&
		permission.Type == constants.PermissionTypeVacation &&
		input.AvailableDays != nil {
		var employee models.Employee
		if err := config.DB.Where("uid = ?", permission.UID).First(&employee).Error; err != nil {
			response.ServerError(c)
			return
		}

		vacation, err := vacationService.CurrentRecord(permission.UID, employee.HiringDate, time.Now())
		if err != nil {
			response.ServerError(c)
			return
		}
		if vacation != nil {
			if err := vacationService.UpdateAvailableDays(vacation.ID, *input.AvailableDays); err != nil {
				response.ServerError(c)
				return
			}
		}
	}

	if notifier != nil {
		var employee models.Employee
		name := permission.UID
		if err := config.DB.Where("uid = ?", permission.UID).First(&employee).Error; err == nil {
			name = employee.Name
		}
		message := notification.NewPermissionMessageBuilder(name, input.Status).Build()
		_ = notifier.SendMessage(message)
	}

	response.Success(c, nil)
}

// UpdatePermission cho chủ đơn sửa lại ngày nghỉ và mô tả. Sửa xong đơn quay
// về trạng thái chờ duyệt; nhân viên thường chỉ sửa được khi đơn còn chờ duyệt.
func UpdatePermission(c *gin.Context) {
	id := c.Param("id")

	var input dto.PermissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePermission(&input); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	var permission models.Permission
	if err := config.DB.Where("id = ?", id).First(&permission).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, permission.UID) {
		response.Forbidden(c)
		return
	}
	if !canAmendPermission(callerRole, permission.Status) {
		response.BadRequest(c, "Đơn đã được xử lý, không sửa được nữa")
		return
	}

	startDate, _ := time.Parse(time.RFC3339, input.StartDate)
	endDate, _ := time.Parse(time.RFC3339, input.EndDate)

	if err := config.DB.Model(&models.Permission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_date":  startDate,
			"end_date":    endDate,
			"description": input.Description,
			"status":      constants.PermissionStatusPending,
		}).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.File != nil {
		mimeType, data, err := validator.ValidateFileData(input.File.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), permissionFilePrefix(permission), data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, nil)
}

// DeletePermission xóa đơn nghỉ còn chờ duyệt của chính mình (HR xóa được
// mọi đơn chờ duyệt), kèm file minh chứng.
func DeletePermission(c *gin.Context) {
	id := c.Param("id")

	var permission models.Permission
	if err := config.DB.Where("id = ?", id).First(&permission).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, permission.UID) {
		response.Forbidden(c)
		return
	}

	if permission.Status == constants.PermissionStatusAccepted {
		response.BadRequest(c, "Không thể xóa đơn đã được duyệt")
		return
	}

	if err := storageService.DeleteByPrefix(c.Request.Context(), permissionFilePrefix(permission)); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(&models.Permission{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
