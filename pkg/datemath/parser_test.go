package datemath_test

import (
	"testing"
	"time"

	"homestead-voice-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	start := parser.StartOfDay(tm)
	wantStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("StartOfDay() got = %v, want %v", start, wantStart)
	}

	end := parser.EndOfDay(start)
	wantEnd := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	if !end.Equal(wantEnd) {
		t.Errorf("EndOfDay() got = %v, want %v", end, wantEnd)
	}
}

func TestWeekdayByName(t *testing.T) {
	wd, ok := datemath.WeekdayByName("friday")
	if !ok || wd != time.Friday {
		t.Errorf("WeekdayByName(friday) got = %v, %v", wd, ok)
	}

	if _, ok := datemath.WeekdayByName("funday"); ok {
		t.Errorf("expected unknown weekday to miss")
	}
}

func TestUpcomingWeekday(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name   string
		target time.Weekday
		want   time.Time
	}{
		{
			name:   "Friday from Wednesday",
			target: time.Friday,
			want:   base.AddDate(0, 0, 2),
		},
		{
			name:   "Monday from Wednesday wraps the week",
			target: time.Monday,
			want:   base.AddDate(0, 0, 5),
		},
		{
			name:   "same weekday resolves to base day",
			target: time.Wednesday,
			want:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.UpcomingWeekday(base, tt.target)
			if !got.Equal(tt.want) {
				t.Errorf("UpcomingWeekday() got = %v, want %v", got, tt.want)
			}
		})
	}
}
