package utils

import "time"

// Korea time location (KST, +09:00)
var krLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// DateKey renders the calendar day of t in KST; the assistant quota
// resets on this boundary.
func DateKey(t time.Time) string {
	return t.In(krLoc).Format("2006-01-02")
}

func FromUnixSecondsKR(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(krLoc)
}

func FormatRFC3339KR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(krLoc).Format(time.RFC3339)
}
