package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// VacationRollover định nghĩa interface cho việc mở năm phép mới
type VacationRollover interface {
	RolloverAnniversaries(now time.Time) (int, error)
}

var vacationRollover VacationRollover

// SetVacationRollover thiết lập implementation cho VacationRollover
func SetVacationRollover(rollover VacationRollover) {
	vacationRollover = rollover
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy mở năm phép mới lúc: %v", now)
		if vacationRollover == nil {
			log.Printf("Lỗi: VacationRollover chưa được thiết lập")
			return
		}
		created, err := vacationRollover.RolloverAnniversaries(now)
		if err != nil {
			log.Printf("Lỗi khi mở năm phép mới: %v", err)
			return
		}
		if created > 0 && m != nil {
			message := fmt.Sprintf("🔔 Đã mở năm phép mới cho %d nhân viên.", created)
			if err := m.Broadcast([]byte(message)); err != nil {
				log.Printf("Lỗi khi gửi thông báo rollover: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
