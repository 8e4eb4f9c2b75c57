package constants

// Role của tài khoản
const (
	RoleEmployee       = 0
	RoleAdmin          = 1
	RoleMaintainer     = 2
	RoleHumanResources = 3
)

// Permission type
const (
	PermissionTypeVacation   = "VACATION"
	PermissionTypeOccasional = "OCCASIONAL"
)

// Permission status
const (
	PermissionStatusPending  = "PENDING"
	PermissionStatusAccepted = "ACCEPTED"
	PermissionStatusRejected = "REJECTED"
)

// Payroll type
const (
	PayrollTypeReceipt = "RECEIPT"
	PayrollTypeBonus   = "BONUS"
)
