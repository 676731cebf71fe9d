// Command seed loads a handful of sample events into the catalog. Events whose
// slug already exists are skipped, so running it twice is harmless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"devevents/config"
	"devevents/internal/domain"
	"devevents/internal/repository/postgres"
	"devevents/internal/services"
)

type options struct {
	reset bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.BoolVar(&opts.reset, "reset", false, "delete all events and bookings before seeding")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()
	store := postgres.NewStore(cfg.DBDriver, cfg.DBUrl)
	defer store.Close()

	if opts.reset {
		if err := store.Reset(ctx); err != nil {
			logger.Error("clear catalog", "err", err)
			os.Exit(1)
		}
		logger.Info("cleared existing events and bookings")
	}

	svc := services.NewEventService(postgres.NewEventRepository(store), cfg.RequestTimeout)
	created, skipped := 0, 0
	for _, in := range sampleEvents {
		event, err := svc.CreateEvent(ctx, in)
		switch {
		case errors.Is(err, domain.ErrDuplicateSlug):
			skipped++
			logger.Info("event already exists", "title", in.Title)
		case err != nil:
			logger.Error("seed event", "title", in.Title, "err", err)
			os.Exit(1)
		default:
			created++
			logger.Info("created event", "slug", event.Slug, "start_at_utc", event.StartAtUTC)
		}
	}
	logger.Info("seed complete", "created", created, "skipped", skipped)
}

var sampleEvents = []domain.EventInput{
	{
		Title:       "React Summit 2026",
		Description: "The biggest React conference of the year featuring the latest innovations in React ecosystem",
		Overview:    "Two days of talks, workshops and networking on React Server Components, Suspense and the future of React.",
		Venue:       "RAI Amsterdam Convention Centre",
		Location:    "Amsterdam, Netherlands",
		Date:        "2026-06-10",
		Time:        "09:00",
		Timezone:    "Europe/Amsterdam",
		Mode:        "hybrid",
		Audience:    "React developers, Frontend engineers, Full-stack developers",
		Organizer:   "GitNation",
		Agenda: []string{
			"09:00 AM | Registration and Coffee",
			"10:00 AM | Opening Keynote - The Future of React",
			"11:30 AM | React Server Components Deep Dive",
			"01:00 PM | Lunch Break",
			"02:00 PM | Workshop: Building with Next.js 15",
			"05:30 PM | Networking Reception",
		},
		Tags: []string{"React", "JavaScript", "Web Development", "Frontend", "Conference"},
	},
	{
		Title:       "Next.js Conf 2025",
		Description: "The official Next.js conference showcasing the latest features and best practices",
		Overview:    "What's new in Next.js 15 and beyond: App Router, Server Actions and modern web development patterns.",
		Venue:       "Moscone Center",
		Location:    "San Francisco, USA",
		Date:        "2025-10-24",
		Time:        "10:00",
		Timezone:    "America/Los_Angeles",
		Mode:        "hybrid",
		Audience:    "Web developers, Full-stack engineers, Tech leads",
		Organizer:   "Vercel",
		Agenda: []string{
			"10:00 AM | Welcome & Registration",
			"11:00 AM | Keynote: Next.js 15 and Beyond",
			"01:00 PM | Lunch & Networking",
			"02:00 PM | Breakout Sessions",
		},
		Tags: []string{"Next.js", "React", "Web Development", "Vercel", "Conference"},
	},
	{
		Title:       "AWS re:Invent 2025",
		Description: "Amazon Web Services' flagship learning conference for the global cloud computing community",
		Overview:    "Keynotes, bootcamps and hands-on labs covering the AWS platform, with major launch announcements.",
		Venue:       "The Venetian Convention Center",
		Location:    "Las Vegas, USA",
		Date:        "2025-11-30",
		Time:        "08:00",
		Timezone:    "America/Los_Angeles",
		Mode:        "offline",
		Audience:    "Cloud engineers, DevOps engineers, Solutions architects",
		Organizer:   "Amazon Web Services",
		Agenda: []string{
			"08:00 AM | Registration",
			"09:00 AM | Keynote",
			"11:00 AM | Breakout Sessions",
			"06:00 PM | re:Play",
		},
		Tags: []string{"AWS", "Cloud", "DevOps", "Conference"},
	},
	{
		Title:       "Hack the North 2026",
		Description: "Canada's biggest hackathon bringing together students from around the world",
		Overview:    "36 hours of building, mentorship and workshops on the University of Waterloo campus.",
		Venue:       "University of Waterloo Engineering Campus",
		Location:    "Waterloo, Canada",
		Date:        "2026-09-18",
		Time:        "18:00",
		Timezone:    "America/Toronto",
		Mode:        "offline",
		Audience:    "Students, Hackers, Designers",
		Organizer:   "Hack the North Team",
		Agenda: []string{
			"06:00 PM | Check-in",
			"08:00 PM | Opening Ceremony",
			"10:00 PM | Hacking Begins",
		},
		Tags: []string{"Hackathon", "Students", "Innovation"},
	},
	{
		Title:       "KubeCon + CloudNativeCon EU 2026",
		Description: "The Cloud Native Computing Foundation's flagship conference",
		Overview:    "Adopters and technologists from leading open source and cloud native communities gather in Vienna.",
		Venue:       "Messe Wien Exhibition & Congress Center",
		Location:    "Vienna, Austria",
		Date:        "2026-03-17",
		Time:        "09:00",
		Timezone:    "Europe/Vienna",
		Mode:        "hybrid",
		Audience:    "Platform engineers, SREs, Kubernetes users",
		Organizer:   "Cloud Native Computing Foundation (CNCF)",
		Agenda: []string{
			"09:00 AM | Keynotes",
			"11:00 AM | Breakout Sessions",
			"05:00 PM | Booth Crawl",
		},
		Tags: []string{"Kubernetes", "Cloud Native", "DevOps", "Open Source", "Conference"},
	},
	{
		Title:       "Google Cloud Next 2026",
		Description: "Google's premier cloud computing event featuring product announcements and hands-on learning",
		Overview:    "The latest in Google Cloud Platform, AI/ML innovations and enterprise solutions, with hands-on labs.",
		Venue:       "Mandalay Bay Convention Center",
		Location:    "Las Vegas, USA",
		Date:        "2026-04-06",
		Time:        "09:00",
		Timezone:    "America/Los_Angeles",
		Mode:        "hybrid",
		Audience:    "Cloud developers, Data scientists, Enterprise architects",
		Organizer:   "Google Cloud",
		Agenda: []string{
			"09:00 AM | Doors Open",
			"10:00 AM | CEO Keynote",
			"02:00 PM | Breakout Sessions",
			"04:00 PM | Hands-on Labs",
		},
		Tags: []string{"Google Cloud", "GCP", "Cloud", "AI/ML", "Conference"},
	},
}
