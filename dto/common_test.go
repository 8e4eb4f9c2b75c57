package dto

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	q := DateRangeQuery{Gte: "2024-06-01T00:00:00Z", Lte: "2024-07-01T00:00:00Z"}

	gte, lte, err := q.ParseDateRange()
	if err != nil {
		t.Fatalf("không mong lỗi, nhận %v", err)
	}
	if gte == nil || !gte.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("gte = %v", gte)
	}
	if lte == nil || !lte.Equal(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("lte = %v", lte)
	}
}

func TestParseDateRangeEmpty(t *testing.T) {
	gte, lte, err := DateRangeQuery{}.ParseDateRange()
	if err != nil || gte != nil || lte != nil {
		t.Errorf("cặp rỗng phải trả về nil, nhận (%v, %v, %v)", gte, lte, err)
	}
}

func TestParseDateRangeInvalid(t *testing.T) {
	if _, _, err := (DateRangeQuery{Gte: "hom-qua"}).ParseDateRange(); err == nil {
		t.Error("chuỗi ngày sai định dạng phải bị từ chối")
	}
}
