package services

import (
	"errors"
	"time"

	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VacationService quản lý bản ghi ngày phép theo năm thâm niên của nhân viên.
type VacationService struct {
	db     *gorm.DB
	logger logger.Logger
}

type VacationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewVacationService(opts VacationServiceOptions) *VacationService {
	return &VacationService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// ResolveWindow tính cửa sổ năm thâm niên [start, end) đang hiệu lực.
// Mốc là ngày vào làm đưa về năm của referenceDate; đúng ngày kỷ niệm thì
// thuộc cửa sổ mới (so sánh >=).
func ResolveWindow(hiringDate, referenceDate time.Time) (time.Time, time.Time) {
	anchor := time.Date(referenceDate.Year(), hiringDate.Month(), hiringDate.Day(),
		hiringDate.Hour(), hiringDate.Minute(), hiringDate.Second(), 0, hiringDate.Location())

	if referenceDate.Before(anchor) {
		return anchor.AddDate(-1, 0, 0), anchor
	}
	return anchor, anchor.AddDate(1, 0, 0)
}

// CurrentRecord trả về bản ghi phép của cửa sổ hiện hành, nil nếu chưa có.
// Chưa có bản ghi nghĩa là "chưa có ngày phép", không phải lỗi.
func (s *VacationService) CurrentRecord(uid string, hiringDate, referenceDate time.Time) (*models.Vacation, error) {
	start, end := ResolveWindow(hiringDate, referenceDate)

	var vacation models.Vacation
	err := s.db.
		Where("uid = ? AND date >= ? AND date < ?", uid, start, end).
		Order("date asc").
		First(&vacation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn ngày phép", err)
	}
	return &vacation, nil
}

// Save tạo một bản ghi phép mới cho uid tại thời điểm date.
func (s *VacationService) Save(uid string, days int, date time.Time) (*models.Vacation, error) {
	vacation := models.Vacation{
		ID:   uuid.NewString(),
		UID:  uid,
		Date: date,
		Days: days,
	}
	if err := s.db.Create(&vacation).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo bản ghi ngày phép", err)
	}
	return &vacation, nil
}

// UpsertDays ghi đè số ngày phép của cửa sổ hiện hành, tạo bản ghi mới nếu
// chưa có. Cặp đọc-rồi-ghi được bảo vệ bằng so sánh version: ghi trùng với
// một writer khác sẽ trả về ErrVacationConflict thay vì mất cập nhật.
func (s *VacationService) UpsertDays(uid string, hiringDate time.Time, days int) (*models.Vacation, error) {
	now := time.Now()
	current, err := s.CurrentRecord(uid, hiringDate, now)
	if err != nil {
		return nil, err
	}

	if current == nil {
		return s.Save(uid, days, now)
	}

	res := s.db.Model(&models.Vacation{}).
		Where("id = ? AND version = ?", current.ID, current.Version).
		Updates(map[string]interface{}{
			"days":    days,
			"version": current.Version + 1,
		})
	if res.Error != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật ngày phép", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBConflict, "Bản ghi ngày phép vừa bị sửa bởi thao tác khác", apperrors.ErrVacationConflict)
	}

	current.Days = days
	current.Version++
	return current, nil
}

// UpdateAvailableDays ghi đè số ngày phép còn lại của một bản ghi cụ thể,
// dùng khi HR duyệt đơn nghỉ phép.
func (s *VacationService) UpdateAvailableDays(id string, availableDays int) error {
	if id == "" {
		return nil
	}
	res := s.db.Model(&models.Vacation{}).
		Where("id = ?", id).
		Update("available_days", availableDays)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật ngày phép còn lại", res.Error)
	}
	return nil
}

// RolloverAnniversaries mở bản ghi phép cho các nhân viên vừa sang năm thâm
// niên mới mà chưa có bản ghi; số ngày lấy theo bản ghi gần nhất. Trả về số
// bản ghi đã tạo.
func (s *VacationService) RolloverAnniversaries(now time.Time) (int, error) {
	var employees []models.Employee
	if err := s.db.Find(&employees).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	created := 0
	for _, employee := range employees {
		if employee.HiringDate.Month() != now.Month() || employee.HiringDate.Day() != now.Day() {
			continue
		}

		current, err := s.CurrentRecord(employee.UID, employee.HiringDate, now)
		if err != nil {
			s.logger.Error("Rollover: lỗi đọc bản ghi phép của %s: %v", employee.UID, err)
			continue
		}
		if current != nil {
			continue
		}

		var last models.Vacation
		days := 0
		if err := s.db.Where("uid = ?", employee.UID).Order("date desc").First(&last).Error; err == nil {
			days = last.Days
		}
		if days == 0 {
			continue
		}

		if _, err := s.Save(employee.UID, days, now); err != nil {
			s.logger.Error("Rollover: lỗi tạo bản ghi phép cho %s: %v", employee.UID, err)
			continue
		}
		created++
	}
	return created, nil
}

// List trả về các bản ghi phép theo khoảng ngày và uid (uid rỗng = tất cả).
func (s *VacationService) List(uid string, gte, lte *time.Time) ([]models.Vacation, error) {
	query := s.db.Model(&models.Vacation{})

	if lte != nil {
		query = query.Where("date <= ?", *lte)
	}
	if gte != nil {
		query = query.Where("date >= ?", *gte)
	}
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}

	var vacations []models.Vacation
	if err := query.Find(&vacations).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn danh sách ngày phép", err)
	}
	return vacations, nil
}
