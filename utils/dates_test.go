package utils

import (
	"testing"
	"time"
)

func TestFormatSpanishDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC), "15 de enero de 2030"},
		{time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), "1 de septiembre de 2026"},
		{time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de diciembre de 2027"},
	}

	for _, tt := range tests {
		if got := FormatSpanishDate(tt.in); got != tt.want {
			t.Errorf("FormatSpanishDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
