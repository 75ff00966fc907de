package utils

import (
	"math"
	"testing"
	"time"
)

// 2024-04-01 is a Monday.
func apr(day, hour, min int) time.Time {
	return time.Date(2024, time.April, day, hour, min, 0, 0, time.UTC)
}

func TestWeekdayHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"full working day", apr(1, 9, 0), apr(1, 17, 0), 8},
		{"friday night into monday skips weekend", apr(5, 23, 0), apr(8, 1, 0), 1},
		{"zero-length interval", apr(1, 9, 0), apr(1, 9, 0), 0},
		{"reversed interval", apr(1, 17, 0), apr(1, 9, 0), 0},
		{"weekend only", apr(6, 9, 0), apr(7, 17, 0), 0},
		{"four full weekdays", apr(1, 0, 0), apr(5, 0, 0), 96},
		{"half hour", apr(2, 10, 0), apr(2, 10, 30), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekdayHours(tt.start, tt.end)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("WeekdayHours(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
