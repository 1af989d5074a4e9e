package remstats

import (
	"fmt"
	"strings"
)

// GenerateHistogram renders a 24-hour delivery distribution as ASCII bars,
// adapted from the teacher's stats.GenerateHistogram.
func GenerateHistogram(hourCounts [24]int, width int) string {
	max := 0
	for _, v := range hourCounts {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return "No deliveries recorded"
	}

	var sb strings.Builder
	sb.WriteString("Delivery hour distribution:\n")
	for hour := 0; hour < 24; hour++ {
		count := hourCounts[hour]
		barWidth := int(float64(count) / float64(max) * float64(width))
		bar := strings.Repeat("█", barWidth)
		fmt.Fprintf(&sb, "%02d:00 │%s %d\n", hour, bar, count)
	}
	return sb.String()
}
