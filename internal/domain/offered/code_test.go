package offered

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchCode(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "first day of the year",
			date: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), // Thursday
			want: "26-01-4",
		},
		{
			name: "sunday maps to seven",
			date: time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
			want: "26-01-7",
		},
		{
			name: "second week starts on day eight",
			date: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC), // Thursday
			want: "26-02-4",
		},
		{
			name: "end of a leap year",
			date: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), // Tuesday, day 366
			want: "24-53-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BatchCode(tt.date))
		})
	}
}
