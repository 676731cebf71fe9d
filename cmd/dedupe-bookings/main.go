// Command dedupe-bookings finds bookings that share an event and email, keeps
// the oldest of each group and, with -apply, deletes the rest. Run it before
// the unique (event_id, email) index is created on a legacy database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"devevents/config"
	"devevents/internal/domain"
	"devevents/internal/repository/postgres"
	"devevents/internal/services"
)

func main() {
	apply := flag.Bool("apply", false, "delete duplicates instead of only reporting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	// Opened directly: migrations would fail on a table that still holds duplicates.
	db, err := sql.Open(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	bookingRepo := postgres.NewBookingRepository(postgres.NewStaticAcquirer(db, cfg.DBDriver))
	svc := services.NewBookingService(nil, bookingRepo, nil, logger, cfg.RequestTimeout)

	report, err := svc.DedupeBookings(context.Background(), *apply)
	if err != nil {
		logger.Error("failed to dedupe bookings", "err", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report, *apply)
}

func printReport(w io.Writer, report *domain.DedupeReport, applied bool) {
	if len(report.Groups) == 0 {
		fmt.Fprintln(w, "No duplicate bookings found.")
		return
	}
	fmt.Fprintf(w, "Found %d duplicate booking group(s).\n", len(report.Groups))
	for _, g := range report.Groups {
		fmt.Fprintf(w, "eventId=%s email=%s keep=%s delete=%d\n", g.EventID, g.Email, g.BookingIDs[0], len(g.BookingIDs)-1)
	}
	if applied {
		fmt.Fprintf(w, "Deleted %d duplicate booking(s).\n", report.Deleted)
		return
	}
	fmt.Fprintln(w, "Dry run only. Re-run with -apply to delete duplicates.")
}
