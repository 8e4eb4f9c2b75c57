package services

import (
	"context"

	apperrors "hrm/errors"
	"hrm/models"
	"hrm/services/logger"

	"gorm.io/gorm"
)

// DeletionService xóa toàn bộ dấu vết của một nhân viên: tài khoản đăng nhập,
// hồ sơ, file trên kho và bản ghi trong mọi bảng. Chuỗi xóa chạy theo thứ tự
// cố định, không có transaction bao trùm: bước lỗi thì dừng, các bước đã chạy
// không được rollback.
type DeletionService struct {
	db       *gorm.DB
	storage  Storage
	identity Identity
	logger   logger.Logger
}

type DeletionServiceOptions struct {
	DB       *gorm.DB
	Storage  Storage
	Identity Identity
	Logger   logger.Logger
}

func NewDeletionService(opts DeletionServiceOptions) *DeletionService {
	return &DeletionService{
		db:       opts.DB,
		storage:  opts.Storage,
		identity: opts.Identity,
		logger:   opts.Logger,
	}
}

// deletionStep là một bước của chuỗi xóa.
type deletionStep struct {
	Name string
	Run  func(ctx context.Context) error
}

// runSteps chạy tuần tự các bước, dừng ở bước đầu tiên bị lỗi và trả về
// PartialFailure với chỉ số bước (tính từ 1). Trả về nil khi mọi bước xong.
func runSteps(ctx context.Context, steps []deletionStep, log logger.Logger) *apperrors.PartialFailure {
	for i, step := range steps {
		if err := step.Run(ctx); err != nil {
			if log != nil {
				log.Error("Chuỗi xóa dừng tại bước %d (%s): %v", i+1, step.Name, err)
			}
			return &apperrors.PartialFailure{
				StepIndex: i + 1,
				StepName:  step.Name,
				Err:       err,
			}
		}
	}
	return nil
}

// deleteRows xóa mọi bản ghi của uid trong một bảng bằng một câu DELETE duy
// nhất: hoặc xóa hết hoặc không xóa gì. Không có bản ghi nào vẫn là thành công.
func (s *DeletionService) deleteRows(uid string, model interface{}) error {
	if err := s.db.Where("uid = ?", uid).Delete(model).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa bản ghi", err)
	}
	return nil
}

// steps dựng danh sách bước xóa cho uid theo đúng thứ tự chạy.
func (s *DeletionService) steps(uid string) []deletionStep {
	return []deletionStep{
		{
			Name: "identity_account",
			Run: func(ctx context.Context) error {
				return s.identity.DeleteAccount(uid)
			},
		},
		{
			Name: "employee_profile",
			Run: func(ctx context.Context) error {
				if err := s.db.Where("uid = ?", uid).Delete(&models.Employee{}).Error; err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa hồ sơ nhân viên", err)
				}
				return nil
			},
		},
		{
			Name: "payment_files_and_records",
			Run: func(ctx context.Context) error {
				var payments []models.Payment
				if err := s.db.Where("uid = ?", uid).Find(&payments).Error; err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn phiếu chi", err)
				}
				for _, payment := range payments {
					if err := s.storage.DeleteByPrefix(ctx, "payments/"+payment.ID); err != nil {
						return err
					}
				}
				return s.deleteRows(uid, &models.Payment{})
			},
		},
		{
			Name: "personal_documents",
			Run: func(ctx context.Context) error {
				return s.storage.DeleteByPrefix(ctx, uid+"/")
			},
		},
		{
			Name: "invoice_files",
			Run: func(ctx context.Context) error {
				var transactions []models.Transaction
				if err := s.db.Where("uid = ?", uid).Find(&transactions).Error; err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn giao dịch", err)
				}
				for _, transaction := range transactions {
					if err := s.storage.DeleteByPrefix(ctx, "invoices/"+transaction.ID+"/"); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name: "permission_files",
			Run: func(ctx context.Context) error {
				var permissions []models.Permission
				if err := s.db.Where("uid = ?", uid).Find(&permissions).Error; err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn đơn nghỉ", err)
				}
				for _, permission := range permissions {
					if err := s.storage.DeleteByPrefix(ctx, "permissions/"+permission.ID); err != nil {
						return err
					}
					if err := s.storage.DeleteByPrefix(ctx, "permissions/occasional/"+permission.ID); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name: "vacation_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.Vacation{})
			},
		},
		{
			Name: "permission_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.Permission{})
			},
		},
		{
			Name: "transaction_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.Transaction{})
			},
		},
		{
			Name: "expense_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.Expense{})
			},
		},
		{
			Name: "checkin_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.CheckIn{})
			},
		},
		{
			Name: "attendance_records",
			Run: func(ctx context.Context) error {
				return s.deleteRows(uid, &models.Attendance{})
			},
		},
		{
			Name: "article_files_and_records",
			Run: func(ctx context.Context) error {
				var articles []models.Article
				if err := s.db.Where("uid = ?", uid).Find(&articles).Error; err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn tài sản bàn giao", err)
				}
				for _, article := range articles {
					if err := s.storage.DeleteByPrefix(ctx, "articles/"+article.ID); err != nil {
						return err
					}
				}
				return s.deleteRows(uid, &models.Article{})
			},
		},
		{
			Name: "payroll_files_and_records",
			Run: func(ctx context.Context) error {
				if err := s.storage.DeleteByPrefix(ctx, "payrolls/"+uid+"/"); err != nil {
					return err
				}
				return s.deleteRows(uid, &models.Payroll{})
			},
		},
	}
}

// DeleteEmployee chạy chuỗi xóa 14 bước cho uid. Lỗi trả về là
// *errors.PartialFailure cho biết bước dừng; chạy lại sau lỗi là an toàn vì
// mọi bước coi "đã bị xóa trước đó" là thành công.
func (s *DeletionService) DeleteEmployee(ctx context.Context, uid string) error {
	if uid == "" {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidUID, "Thiếu uid nhân viên", nil)
	}

	s.logger.Info("Bắt đầu xóa nhân viên %s", uid)
	if failure := runSteps(ctx, s.steps(uid), s.logger); failure != nil {
		return failure
	}
	s.logger.Info("Đã xóa xong nhân viên %s", uid)
	return nil
}
