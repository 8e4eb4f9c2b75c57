package services

import "time"

// MatchesMonth quyết định một đơn nghỉ phép có thuộc tháng báo cáo [gte, lte)
// hay không. Đơn kéo dài nhiều tháng được tính cho tháng chứa ngày kết thúc:
// mốc so sánh được đẩy xa thêm đúng hiệu số tháng giữa ngày kết thúc và tháng
// truy vấn cộng một, để đơn dài không bị rơi khỏi mọi báo cáo tháng.
// Không truyền gte/lte thì mọi đơn đều được tính.
func MatchesMonth(permStart, permEnd time.Time, gte, lte *time.Time, loc *time.Location) bool {
	if gte == nil || lte == nil {
		return true
	}

	// Chuẩn hóa ngày của đơn về lịch địa phương bằng cách cộng offset UTC
	_, offset := time.Now().In(loc).Zone()
	shift := -time.Duration(offset) * time.Second
	fmtStart := permStart.Add(shift)
	fmtEnd := permEnd.Add(shift)

	firstDay := setUTCClock(time.Date(gte.In(loc).Year(), gte.In(loc).Month(), 1, 0, 0, 0, 0, loc), 0, 0, 0)
	// Ngày 0 = ngày cuối của tháng liền trước; lte đánh dấu biên đầu tháng sau.
	// Cố định 12:59:59 để tránh nhập nhằng khi đổi giờ mùa.
	lastDay := setUTCClock(time.Date(lte.In(loc).Year(), lte.In(loc).Month(), 0, 0, 0, 0, 0, loc), 12, 59, 59)

	spanning := fmtStart.In(loc).Month() != fmtEnd.In(loc).Month() &&
		fmtStart.UTC().Month() == lastDay.UTC().Month() &&
		fmtStart.UTC().Month() == firstDay.UTC().Month()

	if spanning {
		yearDiff := fmtEnd.In(loc).Year() - lte.In(loc).Year()
		monthDiff := int(fmtEnd.In(loc).Month()) - int(lte.In(loc).Month())
		totalMonthDiff := yearDiff*12 + monthDiff + 1
		boundary := setUTCClock(
			time.Date(lte.In(loc).Year(), lte.In(loc).Month()+time.Month(totalMonthDiff), 0, 0, 0, 0, 0, loc),
			12, 59, 59)
		return !fmtEnd.After(boundary)
	}

	return !fmtEnd.After(lastDay)
}

// setUTCClock đặt giờ-phút-giây theo UTC của t, giữ nguyên ngày UTC.
func setUTCClock(t time.Time, h, m, s int) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), h, m, s, 0, time.UTC)
}
