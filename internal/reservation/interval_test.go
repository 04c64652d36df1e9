package reservation

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical intervals", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"b inside a", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"a inside b", at(10, 0), at(11, 0), at(9, 0), at(12, 0), true},
		{"partial overlap left", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"partial overlap right", at(10, 0), at(11, 0), at(9, 0), at(10, 30), true},
		{"back to back, a first", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back, b first", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(12, 0), at(13, 0), false},
		{"one minute overlap", at(9, 0), at(10, 1), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps() swapped = %v, want %v", got, tt.want)
			}
		})
	}
}
