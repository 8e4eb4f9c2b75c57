package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// PermissionMessageBuilder dựng thông báo khi đơn nghỉ đổi trạng thái.
type PermissionMessageBuilder struct {
	employeeName string
	status       string
}

func NewPermissionMessageBuilder(employeeName, status string) *PermissionMessageBuilder {
	return &PermissionMessageBuilder{
		employeeName: employeeName,
		status:       status,
	}
}

func (b *PermissionMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn nghỉ của %s vừa chuyển sang trạng thái %s.", b.employeeName, b.status)
}
