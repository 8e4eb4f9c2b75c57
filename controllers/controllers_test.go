package controllers

import (
	"testing"
	"time"

	"hrm/constants"
)

func TestCanAccessRecord(t *testing.T) {
	tests := []struct {
		name      string
		callerUID string
		role      int
		ownerUID  string
		want      bool
	}{
		{"nhân viên xem bản ghi của mình", "u1", constants.RoleEmployee, "u1", true},
		{"nhân viên xem bản ghi người khác", "u1", constants.RoleEmployee, "u2", false},
		{"HR xem bản ghi người khác", "hr1", constants.RoleHumanResources, "u2", true},
		{"admin xem bản ghi người khác", "a1", constants.RoleAdmin, "u2", true},
		{"maintainer xem bản ghi người khác", "m1", constants.RoleMaintainer, "u2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAccessRecord(tt.callerUID, tt.role, tt.ownerUID); got != tt.want {
				t.Errorf("canAccessRecord(%q, %d, %q) = %v, muốn %v",
					tt.callerUID, tt.role, tt.ownerUID, got, tt.want)
			}
		})
	}
}

func TestCanAmendPermission(t *testing.T) {
	tests := []struct {
		name   string
		role   int
		status string
		want   bool
	}{
		{"nhân viên sửa đơn chờ duyệt", constants.RoleEmployee, constants.PermissionStatusPending, true},
		{"nhân viên sửa đơn đã duyệt", constants.RoleEmployee, constants.PermissionStatusAccepted, false},
		{"nhân viên sửa đơn bị từ chối", constants.RoleEmployee, constants.PermissionStatusRejected, false},
		{"HR sửa đơn đã duyệt", constants.RoleHumanResources, constants.PermissionStatusAccepted, true},
		{"HR sửa đơn bị từ chối", constants.RoleHumanResources, constants.PermissionStatusRejected, true},
		{"admin sửa đơn đã duyệt", constants.RoleAdmin, constants.PermissionStatusAccepted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAmendPermission(tt.role, tt.status); got != tt.want {
				t.Errorf("canAmendPermission(%d, %q) = %v, muốn %v", tt.role, tt.status, got, tt.want)
			}
		})
	}
}

func TestAttendanceDayAnchor(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"sáng sớm neo về 06:00 cùng ngày",
			time.Date(2025, 3, 10, 2, 15, 0, 0, loc),
			time.Date(2025, 3, 10, 6, 0, 0, 0, loc),
		},
		{
			"chiều tối neo về 06:00 cùng ngày",
			time.Date(2025, 3, 10, 22, 45, 30, 0, loc),
			time.Date(2025, 3, 10, 6, 0, 0, 0, loc),
		},
		{
			"giờ UTC đổi sang ngày địa phương trước khi neo",
			time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), // 01:00 ngày 11/3 giờ ICT
			time.Date(2025, 3, 11, 6, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attendanceDayAnchor(tt.in, loc)
			if !got.Equal(tt.want) {
				t.Errorf("attendanceDayAnchor(%v) = %v, muốn %v", tt.in, got, tt.want)
			}
		})
	}

	// Hai thời điểm bất kỳ trong cùng một ngày địa phương chia sẻ cùng mốc
	a := attendanceDayAnchor(time.Date(2025, 6, 1, 0, 0, 1, 0, loc), loc)
	b := attendanceDayAnchor(time.Date(2025, 6, 1, 23, 59, 59, 0, loc), loc)
	if !a.Equal(b) {
		t.Errorf("mốc ngày không ổn định: %v != %v", a, b)
	}
}

func TestSignedURLTTL(t *testing.T) {
	if signedURLTTL != 15*time.Minute {
		t.Errorf("signedURLTTL = %v, muốn 15 phút", signedURLTTL)
	}
}
