package utils

import "fmt"

// FormatClock renders a duration in seconds as m:ss.
func FormatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
