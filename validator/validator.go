package validator

import (
	"encoding/base64"
	"strings"
	"time"

	"hrm/constants"
	"hrm/dto"
	"hrm/errors"

	goval "github.com/go-playground/validator/v10"
)

var validate = goval.New()

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(employee *dto.EmployeeRequest) error {
	if employee.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhân viên không được để trống", nil)
	}

	if employee.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(employee.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if employee.HiringDate == "" {
		return errors.NewAppError(errors.ErrCodeMissingHiringDate, "Ngày vào làm không được để trống", nil)
	}

	if _, err := time.Parse("2006-01-02", employee.HiringDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày vào làm không hợp lệ", err)
	}

	if employee.Role < constants.RoleEmployee || employee.Role > constants.RoleHumanResources {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidatePermission validate đơn nghỉ
func ValidatePermission(permission *dto.PermissionRequest) error {
	if permission.Type != constants.PermissionTypeVacation && permission.Type != constants.PermissionTypeOccasional {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại đơn nghỉ không hợp lệ", nil)
	}

	startDate, err := time.Parse(time.RFC3339, permission.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	endDate, err := time.Parse(time.RFC3339, permission.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if endDate.Before(startDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateAmount validate số tiền
func ValidateAmount(amount int64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

// ValidateFileData validate file gửi lên dạng data URI, chỉ nhận ảnh hoặc PDF.
// Trả về MIME type và phần dữ liệu đã decode.
func ValidateFileData(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidFile, "File phải ở dạng data URI", nil)
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	parts := strings.SplitN(rest, ";base64,", 2)
	if len(parts) != 2 {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidFile, "File phải được mã hóa base64", nil)
	}

	mimeType := parts[0]
	if !strings.HasPrefix(mimeType, "image/") && mimeType != "application/pdf" {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidFile, "Chỉ nhận file ảnh hoặc PDF", nil)
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidFile, "Dữ liệu base64 không hợp lệ", err)
	}

	return mimeType, data, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// ValidateDateRange kiểm tra cặp ngày lọc gte/lte
func ValidateDateRange(gte, lte *time.Time) error {
	if gte != nil && lte != nil && lte.Before(*gte) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc lọc phải sau ngày bắt đầu", nil)
	}
	return nil
}
