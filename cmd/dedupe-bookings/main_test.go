package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"devevents/internal/domain"
)

func TestPrintReport(t *testing.T) {
	groups := []domain.DuplicateBookingGroup{
		{EventID: "ev-1", Email: "a@b.com", BookingIDs: []string{"bk-1", "bk-2", "bk-3"}},
	}
	tests := []struct {
		name    string
		report  *domain.DedupeReport
		applied bool
		want    string
	}{
		{
			name:   "nothing to do",
			report: &domain.DedupeReport{},
			want:   "No duplicate bookings found.\n",
		},
		{
			name:   "dry run",
			report: &domain.DedupeReport{Groups: groups},
			want: "Found 1 duplicate booking group(s).\n" +
				"eventId=ev-1 email=a@b.com keep=bk-1 delete=2\n" +
				"Dry run only. Re-run with -apply to delete duplicates.\n",
		},
		{
			name:    "applied",
			report:  &domain.DedupeReport{Groups: groups, Deleted: 2},
			applied: true,
			want: "Found 1 duplicate booking group(s).\n" +
				"eventId=ev-1 email=a@b.com keep=bk-1 delete=2\n" +
				"Deleted 2 duplicate booking(s).\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printReport(&buf, tt.report, tt.applied)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
