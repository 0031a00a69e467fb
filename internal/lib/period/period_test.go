package period

import (
	"testing"
	"time"
)

func TestMonthBounds_TableTests(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "regular month",
			year:      2025,
			month:     4,
			wantStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february non-leap year",
			year:      2025,
			month:     2,
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december ends on the 31st",
			year:      2025,
			month:     12,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "january",
			year:      2025,
			month:     1,
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("MonthBounds(%d, %d) = (%v, %v), want (%v, %v)",
					tt.year, tt.month, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		month int
		year  int
		want  string
	}{
		{1, 2025, "01.2025"},
		{9, 2024, "09.2024"},
		{12, 2025, "12.2025"},
	}

	for _, tt := range tests {
		if got := Label(tt.month, tt.year); got != tt.want {
			t.Errorf("Label(%d, %d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "positive difference",
			from: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "negative difference",
			from: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: -10,
		},
		{
			name: "same day different clock time",
			from: time.Date(2025, 3, 5, 23, 30, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 5, 0, 15, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "across year boundary",
			from: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
