package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken  ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole   ErrorCode = "INVALID_ROLE"
	ErrCodeAccountExists ErrorCode = "ACCOUNT_EXISTS"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"

	// Employee errors
	ErrCodeInvalidUID        ErrorCode = "INVALID_UID"
	ErrCodeEmployeeNotFound  ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeMissingHiringDate ErrorCode = "MISSING_HIRING_DATE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
	ErrCodeDBConflict  ErrorCode = "DB_CONFLICT"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidFile   ErrorCode = "INVALID_FILE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Business errors
	ErrCodePartialFailure   ErrorCode = "PARTIAL_FAILURE"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// PartialFailure là lỗi của chuỗi xóa nhân viên: các bước trước StepIndex đã
// hoàn tất và không được rollback, các bước sau chưa chạy.
type PartialFailure struct {
	StepIndex int    // bước bị lỗi, tính từ 1
	StepName  string // tên bước bị lỗi
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("[%s] dừng tại bước %d (%s): %v", ErrCodePartialFailure, e.StepIndex, e.StepName, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

// CompletedSteps trả về số bước đã hoàn tất trước khi lỗi xảy ra
func (e *PartialFailure) CompletedSteps() int {
	return e.StepIndex - 1
}

var (
	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAccountExists    = errors.New("account already exists")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")

	// Permission errors
	ErrPermissionNotFound = errors.New("permission not found")
	ErrPermissionAccepted = errors.New("permission already accepted")
	ErrNotOwner           = errors.New("record belongs to another employee")

	// Vacation errors
	ErrVacationConflict = errors.New("vacation record modified concurrently")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
