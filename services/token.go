package services

import (
	"time"

	"hrm/config"
	"hrm/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UID  string `json:"uid"`
	Role int    `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func accessSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken tạo access token HS256 chứa uid và role.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// VerifyToken xác thực chữ ký và hạn của token, trả về uid và role.
func VerifyToken(tokenString string) (string, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return accessSecret(), nil
	})
	if err != nil {
		return "", 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return "", 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token đã hết hạn hoặc không hợp lệ", nil)
	}
	if claims.UserInfo.UID == "" {
		return "", 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}
	return claims.UserInfo.UID, claims.UserInfo.Role, nil
}
