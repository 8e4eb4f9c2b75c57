package controllers

import (
	"context"
	"strings"

	"hrm/config"
	"hrm/dto"
	"hrm/response"
	"hrm/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	token, account, err := accountService.Login(input.Email, input.Password)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		UID:   account.UID,
		Email: account.Email,
		Role:  account.Role,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// GoogleLogin đăng nhập bằng Google ID token; tài khoản phải tồn tại sẵn,
// không tự tạo mới.
func GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.BadRequest(c, "Token Google không chứa email")
		return
	}

	account, err := accountService.FindByEmail(strings.ToLower(email))
	if err != nil {
		response.BadRequest(c, "Email chưa được đăng ký trong hệ thống")
		return
	}

	if account.Disabled {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UID: account.UID, Role: account.Role}, 3*24*60)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		UID:   account.UID,
		Email: account.Email,
		Role:  account.Role,
	})
}
