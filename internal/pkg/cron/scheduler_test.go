package cron

import (
	"testing"
	"time"
)

func TestNextDailyRun(t *testing.T) {
	lima := time.FixedZone("UTC-5", -5*3600)

	tests := []struct {
		name string
		now  time.Time
		hour int
		loc  *time.Location
		want time.Time
	}{
		{
			name: "mid-day waits for next midnight",
			now:  time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
			hour: 0,
			loc:  time.UTC,
			want: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the hour rolls to the next day",
			now:  time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			hour: 0,
			loc:  time.UTC,
			want: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "just before midnight",
			now:  time.Date(2025, 11, 3, 23, 30, 0, 0, time.UTC),
			hour: 0,
			loc:  time.UTC,
			want: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "hour still ahead today",
			now:  time.Date(2025, 11, 3, 5, 15, 0, 0, time.UTC),
			hour: 6,
			loc:  time.UTC,
			want: time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "hour resolved in the job's zone",
			now:  time.Date(2025, 11, 3, 3, 0, 0, 0, time.UTC), // 2025-11-02 22:00 in UTC-5
			hour: 0,
			loc:  lima,
			want: time.Date(2025, 11, 3, 0, 0, 0, 0, lima), // 05:00 UTC
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextDailyRun(tt.now, tt.hour, tt.loc)
			if !got.Equal(tt.want) {
				t.Errorf("nextDailyRun(%v, %d) = %v, want %v", tt.now, tt.hour, got, tt.want)
			}
		})
	}
}
