package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatchesMonthNoWindow(t *testing.T) {
	start := date(2024, time.June, 5)
	end := date(2024, time.June, 20)

	if !MatchesMonth(start, end, nil, nil, time.UTC) {
		t.Error("không truyền cửa sổ tháng thì mọi đơn phải được tính")
	}
}

func TestMatchesMonth(t *testing.T) {
	gte := date(2024, time.June, 1)
	lte := date(2024, time.July, 1)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "đơn nằm trọn trong tháng",
			start: date(2024, time.June, 5),
			end:   date(2024, time.June, 20),
			want:  true,
		},
		{
			name:  "đơn kết thúc đúng ngày cuối tháng",
			start: date(2024, time.June, 10),
			end:   date(2024, time.June, 30),
			want:  true,
		},
		{
			name:  "đơn của tháng sau",
			start: date(2024, time.July, 3),
			end:   date(2024, time.July, 10),
			want:  false,
		},
		{
			name:  "đơn kéo từ tháng 6 sang tháng 8",
			start: date(2024, time.June, 25),
			end:   date(2024, time.August, 2),
			want:  true,
		},
		{
			name:  "đơn kéo dài ba tháng",
			start: date(2024, time.June, 25),
			end:   date(2024, time.September, 10),
			want:  true,
		},
		{
			name:  "đơn bắt đầu tháng trước kết thúc trong tháng",
			start: date(2024, time.May, 28),
			end:   date(2024, time.June, 3),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesMonth(tt.start, tt.end, &gte, &lte, time.UTC)
			if got != tt.want {
				t.Errorf("MatchesMonth(%v, %v) = %v, muốn %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMatchesMonthSpanningBoundary(t *testing.T) {
	gte := date(2024, time.June, 1)
	lte := date(2024, time.July, 1)

	// Đơn kéo sang tháng 8: mốc so sánh bị đẩy tới 31/08, nên kết thúc 02/08
	// vẫn thuộc báo cáo tháng 6
	start := date(2024, time.June, 25)
	end := date(2024, time.August, 2)

	if !MatchesMonth(start, end, &gte, &lte, time.UTC) {
		t.Error("đơn kéo dài nhiều tháng phải được tính theo mốc mở rộng")
	}
}
