package services

import (
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	hiring := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "trước ngày kỷ niệm thuộc cửa sổ cũ",
			reference: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "đúng ngày kỷ niệm thuộc cửa sổ mới",
			reference: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "giữa năm thâm niên",
			reference: time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveWindow(hiring, tt.reference)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("ResolveWindow(%v) = [%v, %v), muốn [%v, %v)",
					tt.reference, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveWindowProperties(t *testing.T) {
	references := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2030, time.July, 4, 12, 0, 0, 0, time.UTC),
	}
	hiring := time.Date(2019, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, reference := range references {
		start, end := ResolveWindow(hiring, reference)

		if !start.AddDate(1, 0, 0).Equal(end) {
			t.Errorf("cửa sổ %v..%v không dài đúng một năm", start, end)
		}
		if reference.Before(start) || !reference.Before(end) {
			t.Errorf("mốc %v nằm ngoài cửa sổ [%v, %v)", reference, start, end)
		}
	}
}
