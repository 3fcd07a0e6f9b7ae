package validators

import "time"

// IsClock reports whether hm is a 24h "HH:mm" wall-clock time.
func IsClock(hm string) bool {
	if len(hm) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// IsOpeningSpan reports whether open and close form a same-day span.
func IsOpeningSpan(open, close string) bool {
	if !IsClock(open) || !IsClock(close) {
		return false
	}
	return open < close
}
