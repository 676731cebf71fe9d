// Command organizer-token prints a signed organizer token for POST /events,
// using ORGANIZER_TOKEN_SECRET from the environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"devevents/config"
	"devevents/internal/adapters/auth"
	"devevents/internal/domain"
)

func main() {
	subject := flag.String("subject", "organizer", "token subject, e.g. the organizer's email")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.OrganizerTokenSecret == "" {
		fmt.Fprintln(os.Stderr, "ORGANIZER_TOKEN_SECRET is not set")
		os.Exit(1)
	}
	if *ttl <= 0 {
		fmt.Fprintln(os.Stderr, "-ttl must be positive")
		os.Exit(1)
	}

	token, err := auth.NewOrganizer(cfg.OrganizerTokenSecret).Issue(*subject, []string{domain.OrganizerRole}, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
