// timex.go — clock and sleep wrappers.
//
// Thin, never-failing wrappers over the standard time package: a
// millisecond sleep, a UTC-timestamp reader, and a best-effort
// timestamp-to-local-datetime formatter with a fixed sentinel for input
// the formatter cannot represent.
package timex

import "time"

// DatetimeLayout is the fixed local-datetime layout used by Datetime.
const DatetimeLayout = "2006-01-02 15:04:05"

// DatetimeSentinel is returned for timestamps outside the representable
// range instead of failing.
const DatetimeSentinel = "0000-00-00 00:00:00"

// maxDatetimeTS is the last second of year 9999, the upper bound the
// four-digit layout can represent.
const maxDatetimeTS = 253402300799

// SleepMS blocks the calling goroutine for n milliseconds. n <= 0 returns
// immediately.
func SleepMS(n int64) {
	if n <= 0 {
		return
	}
	time.Sleep(time.Duration(n) * time.Millisecond)
}

// Timestamp returns the current time as seconds since the Unix epoch. It
// never fails: a host clock reporting a pre-epoch time yields 0. Under a
// correctly functioning clock it is monotonically non-decreasing across
// sequential calls.
func Timestamp() int64 {
	ts := time.Now().Unix()
	if ts < 0 {
		return 0
	}
	return ts
}

// Datetime formats seconds-since-epoch as a local datetime,
// "2006-01-02 15:04:05". Best-effort: timestamps the layout cannot
// represent (negative, or past year 9999) return DatetimeSentinel rather
// than failing.
func Datetime(ts int64) string {
	if ts < 0 || ts > maxDatetimeTS {
		return DatetimeSentinel
	}
	return time.Unix(ts, 0).Format(DatetimeLayout)
}

// DatetimeNow is Datetime(Timestamp()).
func DatetimeNow() string {
	return Datetime(Timestamp())
}
