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
	"gorm.io/gorm"
)

// attendanceDayAnchor đưa một thời điểm về mốc 06:00 sáng của ngày đó theo
// lịch địa phương; mọi dòng công của cùng một ngày chia sẻ cùng mốc này.
func attendanceDayAnchor(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 6, 0, 0, 0, loc)
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func attendanceFromRequest(input dto.AttendanceRequest) (models.Attendance, error) {
	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		return models.Attendance{}, err
	}
	in, err := parseOptionalTime(input.In)
	if err != nil {
		return models.Attendance{}, err
	}
	out, err := parseOptionalTime(input.Out)
	if err != nil {
		return models.Attendance{}, err
	}

	attendance := models.Attendance{
		ID:      input.ID,
		UID:     input.UID,
		Date:    date,
		In:      in,
		Out:     out,
		Summary: input.Summary,
	}
	if attendance.ID == "" {
		attendance.ID = uuid.NewString()
	}
	return attendance, nil
}

// CreateAttendance mở một dòng công mới; mỗi nhân viên mỗi ngày chỉ có một
// dòng, ngày neo ở mốc 06:00 địa phương.
func CreateAttendance(c *gin.Context) {
	var input dto.AttendanceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	attendance, err := attendanceFromRequest(input)
	if err != nil {
		response.ValidationError(c, "Định dạng ngày giờ không hợp lệ")
		return
	}
	// Nhân viên thường chỉ mở dòng công cho chính mình
	if c.GetInt("userRole") == constants.RoleEmployee {
		attendance.UID = c.GetString("uid")
	}
	attendance.Date = attendanceDayAnchor(attendance.Date, config.Location)

	var count int64
	if err := config.DB.Model(&models.Attendance{}).
		Where("uid = ? AND date = ?", attendance.UID, attendance.Date).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.BadRequest(c, "Ngày này đã có dòng công rồi")
		return
	}

	if err := config.DB.Create(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, attendance)
}

// GetAttendance trả về một dòng công theo id.
func GetAttendance(c *gin.Context) {
	id := c.Param("id")

	var attendance models.Attendance
	if err := config.DB.Where("id = ?", id).First(&attendance).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, attendance.UID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, attendance)
}

// CloseAttendance chốt ngày công: ghi giờ ra và tóm tắt công việc.
func CloseAttendance(c *gin.Context) {
	id := c.Param("id")

	var input dto.AttendanceCloseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := time.Parse(time.RFC3339, input.Out)
	if err != nil {
		response.ValidationError(c, "Giờ ra không hợp lệ")
		return
	}

	var attendance models.Attendance
	if err := config.DB.Where("id = ?", id).First(&attendance).Error; err != nil {
		response.NotFound(c)
		return
	}

	callerUID := c.GetString("uid")
	callerRole := c.GetInt("userRole")
	if !canAccessRecord(callerUID, callerRole, attendance.UID) {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Model(&models.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"out":     out,
			"summary": input.Summary,
		}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// SaveAttendances ghi nhiều dòng công trong một transaction: có id thì ghi đè,
// chưa có thì tạo mới; lỗi một dòng là bỏ cả lô.
func SaveAttendances(c *gin.Context) {
	var input dto.AttendanceBatchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	attendances := make([]models.Attendance, 0, len(input.Attendances))
	for _, row := range input.Attendances {
		attendance, err := attendanceFromRequest(row)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày giờ không hợp lệ")
			return
		}
		attendances = append(attendances, attendance)
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, attendance := range attendances {
			if err := tx.Save(&attendance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, attendances)
}

// ListAttendances trả về bảng công theo nhân viên và khoảng ngày.
func ListAttendances(c *gin.Context) {
	var filter dto.AttendanceFilter
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

	query := config.DB.Model(&models.Attendance{}).Order("date asc")
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}

	var attendances []models.Attendance
	if err := query.Find(&attendances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, attendances)
}
