package controllers

import (
	"errors"
	"sort"
	"strings"
	"time"

	"hrm/config"
	"hrm/constants"
	"hrm/dto"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/response"
	"hrm/services"
	"hrm/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Tên file giấy tờ chuẩn trong folder cá nhân của nhân viên
var personalDocumentNames = []string{"avatar", "id", "certificate"}

// CreateEmployee tạo nhân viên mới: tài khoản đăng nhập, hồ sơ, giấy tờ,
// bản ghi phép khởi tạo và phiếu chi đầu tiên nếu có.
func CreateEmployee(c *gin.Context) {
	var input dto.EmployeeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateEmployee(&input); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	input.Email = strings.ToLower(input.Email)
	hiringDate, _ := time.Parse("2006-01-02", input.HiringDate)

	password, err := services.GeneratePassword()
	if err != nil {
		response.ServerError(c)
		return
	}

	uid, err := accountService.CreateAccount(input.Email, password)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeAccountExists {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if input.Role != constants.RoleEmployee {
		if err := accountService.SetRole(uid, input.Role); err != nil {
			response.ServerError(c)
			return
		}
	}

	employee := models.Employee{
		UID:                  uid,
		Name:                 input.Name,
		FirstLastName:        input.FirstLastName,
		SecondLastName:       input.SecondLastName,
		Email:                input.Email,
		PhoneNumber:          input.PhoneNumber,
		Address:              input.Address,
		SocialSecurityNumber: input.SocialSecurityNumber,
		Curp:                 input.Curp,
		Rfc:                  input.Rfc,
		EmergencyNumberOne:   input.EmergencyNumberOne,
		EmergencyNumberTwo:   input.EmergencyNumberTwo,
		EmployeeCode:         input.EmployeeCode,
		HiringDate:           hiringDate,
		Bank:                 input.Bank,
		BankAccount:          input.BankAccount,
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			employee.Birthday = birthday
		}
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Giấy tờ cá nhân nằm trong folder riêng của uid
	for _, file := range input.Files {
		mimeType, data, err := validator.ValidateFileData(file.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), uid+"/"+file.Name, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	if input.VacationDays > 0 {
		if _, err := vacationService.Save(uid, input.VacationDays, time.Now()); err != nil {
			response.ServerError(c)
			return
		}
	}

	if input.PaymentAmount > 0 {
		payment := models.Payment{
			ID:     uuid.NewString(),
			UID:    uid,
			Amount: input.PaymentAmount,
			Date:   time.Now(),
		}
		if err := config.DB.Create(&payment).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	go accountService.SendAccountEmail(input.Email, password)

	response.Success(c, gin.H{"uid": uid})
}

// ListEmployees trả về danh sách nhân viên, có tìm kiếm xấp xỉ theo tên.
func ListEmployees(c *gin.Context) {
	var query dto.EmployeeListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var employees []models.Employee
	if err := config.DB.Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.EmployeeListItem, 0, len(employees))
	for _, employee := range employees {
		items = append(items, dto.EmployeeListItem{
			UID:          employee.UID,
			Name:         employee.Name,
			FullName:     fullName(employee),
			Email:        employee.Email,
			EmployeeCode: employee.EmployeeCode,
		})
	}

	if query.Search != "" {
		items = searchEmployees(query.Search, items)
	}

	response.Success(c, items)
}

// GetEmployee trả về hồ sơ kèm role, ngày phép hiện hành và URL giấy tờ.
func GetEmployee(c *gin.Context) {
	uid := c.Param("uid")

	var employee models.Employee
	if err := config.DB.Where("uid = ?", uid).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	var account models.Account
	role := constants.RoleEmployee
	if err := config.DB.Where("uid = ?", uid).First(&account).Error; err == nil {
		role = account.Role
	}

	result := dto.EmployeeResponse{
		Employee: employee,
		Role:     role,
		Files:    map[string]string{},
	}

	vacation, err := vacationService.CurrentRecord(uid, employee.HiringDate, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	if vacation != nil {
		result.Days = vacation.Days
		result.AvailableDays = vacation.AvailableDays
	}

	for _, name := range personalDocumentNames {
		url, err := storageService.SignedReadURL(c.Request.Context(), uid+"/"+name, signedURLTTL)
		if err == nil && url != "" {
			result.Files[name] = url
		}
	}

	response.Success(c, result)
}

// UpdateEmployee cập nhật hồ sơ; đổi email lan sang tài khoản đăng nhập,
// đổi số ngày phép đi qua UpsertDays có chống ghi đè song song.
func UpdateEmployee(c *gin.Context) {
	uid := c.Param("uid")

	var input dto.EmployeeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateEmployee(&input); err != nil {
		response.ValidationError(c, apperrors.GetAppError(err).Message)
		return
	}

	var employee models.Employee
	if err := config.DB.Where("uid = ?", uid).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	input.Email = strings.ToLower(input.Email)
	if input.Email != employee.Email {
		if err := accountService.UpdateEmail(uid, input.Email); err != nil {
			response.ServerError(c)
			return
		}
	}

	hiringDate, _ := time.Parse("2006-01-02", input.HiringDate)

	updates := map[string]interface{}{
		"name":                   input.Name,
		"first_last_name":        input.FirstLastName,
		"second_last_name":       input.SecondLastName,
		"email":                  input.Email,
		"phone_number":           input.PhoneNumber,
		"address":                input.Address,
		"social_security_number": input.SocialSecurityNumber,
		"curp":                   input.Curp,
		"rfc":                    input.Rfc,
		"emergency_number_one":   input.EmergencyNumberOne,
		"emergency_number_two":   input.EmergencyNumberTwo,
		"employee_code":          input.EmployeeCode,
		"hiring_date":            hiringDate,
		"bank":                   input.Bank,
		"bank_account":           input.BankAccount,
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			updates["birthday"] = birthday
		}
	}

	if err := config.DB.Model(&models.Employee{}).Where("uid = ?", uid).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := accountService.SetRole(uid, input.Role); err != nil {
		response.ServerError(c)
		return
	}

	if input.VacationDays > 0 {
		if _, err := vacationService.UpsertDays(uid, hiringDate, input.VacationDays); err != nil {
			if errors.Is(err, apperrors.ErrVacationConflict) {
				response.Conflict(c)
				return
			}
			response.ServerError(c)
			return
		}
	}

	for _, file := range input.Files {
		mimeType, data, err := validator.ValidateFileData(file.Data)
		if err != nil {
			response.ValidationError(c, apperrors.GetAppError(err).Message)
			return
		}
		if err := storageService.Save(c.Request.Context(), uid+"/"+file.Name, data, mimeType); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, nil)
}

// DeleteEmployee chạy chuỗi xóa toàn bộ dữ liệu của nhân viên.
func DeleteEmployee(c *gin.Context) {
	uid := c.Param("uid")

	if err := deletionService.DeleteEmployee(c.Request.Context(), uid); err != nil {
		var partial *apperrors.PartialFailure
		if errors.As(err, &partial) {
			response.PartialFailure(c, partial)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, nil)
}

// Hàm chuẩn hóa chuỗi tìm kiếm
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func fullName(employee models.Employee) string {
	parts := []string{employee.Name, employee.FirstLastName, employee.SecondLastName}
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

type scoredEmployee struct {
	item  dto.EmployeeListItem
	score float64
}

// searchEmployees lọc danh sách theo tên gần đúng: khớp chuỗi con, khớp
// closestmatch trên n-gram, hoặc độ tương đồng levenshtein trên 0.7.
func searchEmployees(search string, items []dto.EmployeeListItem) []dto.EmployeeListItem {
	normalizedQuery := normalizeInput(search)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, normalizeInput(item.FullName))
	}
	matcher := closestmatch.New(names, []int{2, 3})
	closest := matcher.Closest(normalizedQuery)

	var scored []scoredEmployee
	for i, item := range items {
		normalizedName := names[i]
		similarity := calculateSimilarity(normalizedQuery, normalizedName)

		switch {
		case strings.Contains(normalizedName, normalizedQuery):
			scored = append(scored, scoredEmployee{item: item, score: 2 + similarity})
		case normalizedName == closest:
			scored = append(scored, scoredEmployee{item: item, score: 1 + similarity})
		case similarity > 0.7:
			scored = append(scored, scoredEmployee{item: item, score: similarity})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]dto.EmployeeListItem, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.item)
	}
	return result
}
