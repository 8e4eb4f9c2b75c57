package validator

import (
	"encoding/base64"
	"testing"

	"hrm/dto"
	"hrm/errors"
)

func validEmployee() dto.EmployeeRequest {
	return dto.EmployeeRequest{
		Name:       "Nguyen Van A",
		Email:      "a@example.com",
		HiringDate: "2023-03-10",
	}
}

func TestValidateEmployee(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*dto.EmployeeRequest)
		wantCode errors.ErrorCode
	}{
		{"hợp lệ", func(e *dto.EmployeeRequest) {}, ""},
		{"thiếu tên", func(e *dto.EmployeeRequest) { e.Name = "" }, errors.ErrCodeRequiredField},
		{"thiếu email", func(e *dto.EmployeeRequest) { e.Email = "" }, errors.ErrCodeRequiredField},
		{"email sai", func(e *dto.EmployeeRequest) { e.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"thiếu ngày vào làm", func(e *dto.EmployeeRequest) { e.HiringDate = "" }, errors.ErrCodeMissingHiringDate},
		{"ngày vào làm sai định dạng", func(e *dto.EmployeeRequest) { e.HiringDate = "10/03/2023" }, errors.ErrCodeInvalidFormat},
		{"role ngoài khoảng", func(e *dto.EmployeeRequest) { e.Role = 9 }, errors.ErrCodeInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee := validEmployee()
			tt.mutate(&employee)

			err := ValidateEmployee(&employee)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("không mong lỗi, nhận %v", err)
				}
				return
			}
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("mã lỗi = %v, muốn %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateFileData(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("noi dung file"))

	tests := []struct {
		name    string
		dataURI string
		wantOK  bool
	}{
		{"ảnh png", "data:image/png;base64," + payload, true},
		{"ảnh jpeg", "data:image/jpeg;base64," + payload, true},
		{"pdf", "data:application/pdf;base64," + payload, true},
		{"text bị chặn", "data:text/plain;base64," + payload, false},
		{"không phải data URI", "http://example.com/file.png", false},
		{"thiếu base64", "data:image/png," + payload, false},
		{"base64 hỏng", "data:image/png;base64,%%%", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, data, err := ValidateFileData(tt.dataURI)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("không mong lỗi, nhận %v", err)
				}
				if mimeType == "" || len(data) == 0 {
					t.Error("file hợp lệ phải trả về MIME và dữ liệu")
				}
				return
			}
			if err == nil {
				t.Error("file không hợp lệ phải bị từ chối")
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(100); err != nil {
		t.Errorf("số tiền dương phải hợp lệ, nhận %v", err)
	}
	if err := ValidateAmount(-1); err == nil {
		t.Error("số tiền âm phải bị từ chối")
	}
}
