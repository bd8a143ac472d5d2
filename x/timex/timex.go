package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromMs returns a time.Duration for a millisecond period.
// ms==0 is coerced to 1 to avoid a zero ticker period.
func PeriodFromMs(ms uint32) time.Duration {
	if ms == 0 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// HzFromPeriodMs returns the sample rate implied by a millisecond period.
func HzFromPeriodMs(ms uint32) float64 {
	if ms == 0 {
		ms = 1
	}
	return 1000.0 / float64(ms)
}
