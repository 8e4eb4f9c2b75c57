package services

import (
	"os"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UID: "u1", Role: 3}, 60)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	uid, role, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken lỗi: %v", err)
	}
	if uid != "u1" || role != 3 {
		t.Errorf("VerifyToken = (%q, %d), muốn (u1, 3)", uid, role)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	os.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	token, err := GenerateToken(UserInfo{UID: "u1", Role: 0}, 60)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	os.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	if _, _, err := VerifyToken(token); err == nil {
		t.Error("token ký bằng secret khác phải bị từ chối")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	os.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	if _, _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("chuỗi rác phải bị từ chối")
	}
}
