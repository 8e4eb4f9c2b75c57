package controllers

import (
	"time"

	"hrm/constants"
	"hrm/services"
	"hrm/services/notification"
)

// Thời hạn URL đọc có chữ ký cấp cho client.
const signedURLTTL = 15 * time.Minute

// Các service dùng chung cho controllers, gán một lần lúc khởi động.
var (
	accountService  *services.AccountService
	vacationService *services.VacationService
	deletionService *services.DeletionService
	storageService  services.Storage
	notifier        notification.Service
)

type Options struct {
	AccountService  *services.AccountService
	VacationService *services.VacationService
	DeletionService *services.DeletionService
	Storage         services.Storage
	Notifier        notification.Service
}

// Init gán các collaborator cho controllers; gọi một lần trong InitApp.
func Init(opts Options) {
	accountService = opts.AccountService
	vacationService = opts.VacationService
	deletionService = opts.DeletionService
	storageService = opts.Storage
	notifier = opts.Notifier
}

// canAccessRecord cho biết caller có được đụng vào bản ghi của ownerUID không:
// nhân viên thường chỉ đụng bản ghi của mình, các role khác đụng được tất cả.
func canAccessRecord(callerUID string, callerRole int, ownerUID string) bool {
	return ownerUID == callerUID || callerRole != constants.RoleEmployee
}
