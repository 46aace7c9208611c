package scoring

import (
	"strconv"
	"strings"
)

// ParseDuration converts an elapsed-time string like "01:02:03" into seconds.
// The trailing components are read right-to-left as seconds, minutes, hours;
// missing higher components count as zero, as do non-numeric components.
func ParseDuration(s string) int {
	parts := strings.Split(s, ":")
	seconds := 0
	unit := 1
	for i := len(parts) - 1; i >= 0 && unit <= 3600; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err == nil {
			seconds += n * unit
		}
		unit *= 60
	}
	return seconds
}

// parsePercent reads a pass rate like "100%" into a fraction in [0,1].
// Anything without leading digits counts as zero.
func parsePercent(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return float64(n) / 100
}
