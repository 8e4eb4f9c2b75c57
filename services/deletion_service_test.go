package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "hrm/errors"
	"hrm/services/logger"
)

func fakeSteps(count int, failAt int, ran *[]int) []deletionStep {
	steps := make([]deletionStep, 0, count)
	for i := 1; i <= count; i++ {
		i := i
		steps = append(steps, deletionStep{
			Name: fmt.Sprintf("step_%d", i),
			Run: func(ctx context.Context) error {
				*ran = append(*ran, i)
				if i == failAt {
					return errors.New("hỏng")
				}
				return nil
			},
		})
	}
	return steps
}

func TestRunStepsAllSucceed(t *testing.T) {
	var ran []int
	failure := runSteps(context.Background(), fakeSteps(14, 0, &ran), logger.NewDefaultLogger(logger.ErrorLevel))

	if failure != nil {
		t.Fatalf("không mong lỗi, nhận %v", failure)
	}
	if len(ran) != 14 {
		t.Errorf("chạy %d bước, muốn 14", len(ran))
	}
}

func TestRunStepsAbortsAtFailure(t *testing.T) {
	var ran []int
	failure := runSteps(context.Background(), fakeSteps(14, 7, &ran), logger.NewDefaultLogger(logger.ErrorLevel))

	if failure == nil {
		t.Fatal("mong có lỗi tại bước 7")
	}
	if failure.StepIndex != 7 {
		t.Errorf("StepIndex = %d, muốn 7", failure.StepIndex)
	}
	if failure.StepName != "step_7" {
		t.Errorf("StepName = %q, muốn step_7", failure.StepName)
	}
	if failure.CompletedSteps() != 6 {
		t.Errorf("CompletedSteps = %d, muốn 6", failure.CompletedSteps())
	}
	// Các bước 1-7 đã chạy, 8-14 chưa đụng tới
	if len(ran) != 7 {
		t.Errorf("đã chạy %d bước, muốn dừng sau bước 7", len(ran))
	}
	for i, step := range ran {
		if step != i+1 {
			t.Errorf("thứ tự chạy sai tại vị trí %d: %v", i, ran)
		}
	}
}

func TestRunStepsFailureIsPartialFailure(t *testing.T) {
	var ran []int
	failure := runSteps(context.Background(), fakeSteps(3, 1, &ran), logger.NewDefaultLogger(logger.ErrorLevel))

	var target *apperrors.PartialFailure
	if !errors.As(error(failure), &target) {
		t.Fatal("lỗi trả về phải là *errors.PartialFailure")
	}
	if target.CompletedSteps() != 0 {
		t.Errorf("lỗi ngay bước 1 thì chưa bước nào hoàn tất, nhận %d", target.CompletedSteps())
	}
}

func TestDeletionStepOrder(t *testing.T) {
	want := []string{
		"identity_account",
		"employee_profile",
		"payment_files_and_records",
		"personal_documents",
		"invoice_files",
		"permission_files",
		"vacation_records",
		"permission_records",
		"transaction_records",
		"expense_records",
		"checkin_records",
		"attendance_records",
		"article_files_and_records",
		"payroll_files_and_records",
	}

	s := &DeletionService{}
	steps := s.steps("u1")

	if len(steps) != len(want) {
		t.Fatalf("có %d bước, muốn %d", len(steps), len(want))
	}
	for i, step := range steps {
		if step.Name != want[i] {
			t.Errorf("bước %d = %q, muốn %q", i+1, step.Name, want[i])
		}
	}
}

func TestDeleteEmployeeRequiresUID(t *testing.T) {
	s := NewDeletionService(DeletionServiceOptions{
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})

	err := s.DeleteEmployee(context.Background(), "")
	if err == nil {
		t.Fatal("uid rỗng phải bị từ chối")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeInvalidUID {
		t.Errorf("mã lỗi = %v, muốn %s", err, apperrors.ErrCodeInvalidUID)
	}
}
