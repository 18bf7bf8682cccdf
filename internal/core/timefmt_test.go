package core

import (
	"math"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{9.99, "0:09"},
		{59, "0:59"},
		{60, "1:00"},
		{125.9, "2:05"},
		{600, "10:00"},
		{3725, "62:05"},
		{-3, "0:00"},
		{math.NaN(), "0:00"},
		{math.Inf(1), "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(3*time.Minute + 20*time.Second + 900*time.Millisecond); got != "3:20" {
		t.Errorf("FormatDuration = %q, want %q", got, "3:20")
	}
}
