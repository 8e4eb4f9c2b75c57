package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"

	"hrm/config"
	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Identity là nhà cung cấp danh tính của hệ thống: mọi nhân viên có đúng một
// tài khoản đăng nhập gắn với uid của hồ sơ.
type Identity interface {
	VerifyToken(tokenString string) (string, int, error)
	CreateAccount(email, password string) (string, error)
	SetRole(uid string, role int) error
	UpdateEmail(uid, email string) error
	DeleteAccount(uid string) error
}

// AccountService implement Identity trên bảng accounts với bcrypt + JWT.
type AccountService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AccountServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAccountService(opts AccountServiceOptions) *AccountService {
	return &AccountService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GeneratePassword sinh mật khẩu ngẫu nhiên 12 ký tự cho tài khoản mới.
func GeneratePassword() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	password := ""
	for i := 0; i < 12; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		password += string(chars[n.Int64()])
	}
	return password, nil
}

func (s *AccountService) VerifyToken(tokenString string) (string, int, error) {
	return VerifyToken(tokenString)
}

// CreateAccount tạo tài khoản mới, trả về uid. Email trùng là lỗi conflict.
func (s *AccountService) CreateAccount(email, password string) (string, error) {
	var existing models.Account
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeAccountExists, "Email đã được đăng ký trước đó", apperrors.ErrAccountExists)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi băm mật khẩu", err)
	}

	account := models.Account{
		UID:      uuid.NewString(),
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo tài khoản", err)
	}
	return account.UID, nil
}

func (s *AccountService) SetRole(uid string, role int) error {
	res := s.db.Model(&models.Account{}).Where("uid = ?", uid).Update("role", role)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật role", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy tài khoản", nil)
	}
	return nil
}

func (s *AccountService) UpdateEmail(uid, email string) error {
	res := s.db.Model(&models.Account{}).Where("uid = ?", uid).Update("email", email)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật email", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy tài khoản", nil)
	}
	return nil
}

// DeleteAccount xóa tài khoản; tài khoản đã bị xóa trước đó vẫn là thành công
// để chuỗi xóa nhân viên chạy lại được an toàn.
func (s *AccountService) DeleteAccount(uid string) error {
	if err := s.db.Where("uid = ?", uid).Delete(&models.Account{}).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa tài khoản", err)
	}
	return nil
}

// Login xác thực email/mật khẩu, trả về access token.
func (s *AccountService) Login(email, password string) (string, *models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
		}
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn tài khoản", err)
	}

	if account.Disabled {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Tài khoản đã bị khóa", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
	}

	token, err := GenerateToken(UserInfo{UID: account.UID, Role: account.Role}, 3*24*60)
	if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi tạo token", err)
	}
	return token, &account, nil
}

// FindByEmail trả về tài khoản theo email, dùng cho đăng nhập Google.
func (s *AccountService) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy tài khoản", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn tài khoản", err)
	}
	return &account, nil
}

// sendAccountEmail gửi mật khẩu khởi tạo cho nhân viên mới qua SMTP.
func sendAccountEmail(email string, password string) error {
	from := config.GetEnv("SMTP_FROM")
	smtpPassword := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	to := []string{email}
	subject := "Subject: Tài khoản nhân viên của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Tài khoản mới</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Tài khoản nhân viên của bạn đã được tạo.</p>
			<p>Mật khẩu đăng nhập lần đầu: <strong>%s</strong></p>
			<p>Vui lòng đổi mật khẩu sau khi đăng nhập.</p>
			<p>Xin cám ơn,<br>Phòng nhân sự</p>
		</body>
		</html>
	`, email, password)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, smtpPassword, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendAccountEmail bản public cho controller dùng sau khi tạo nhân viên.
func (s *AccountService) SendAccountEmail(email, password string) {
	if err := sendAccountEmail(email, password); err != nil {
		s.logger.Error("Không gửi được email tài khoản cho %s: %v", email, err)
	}
}
