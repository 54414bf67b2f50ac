package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/poiesic/elscan"
	"github.com/poiesic/elscan/els"
	"github.com/poiesic/elscan/plan"
	"github.com/poiesic/elscan/report"
	"github.com/urfave/cli/v2"
)

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Run a scan plan and report the terms found close together",
		Description: "Terms and parameters come from --plan; flags override the plan file.\n" +
			"Results are cached in --db and the report is stored as a run.",
		Action: scanAction,
		Flags: append(inputFlags(),
			dbFlag(),
			&cli.StringFlag{
				Name:    "plan",
				Aliases: []string{"p"},
				Usage:   "YAML scan plan",
			},
			&cli.StringSliceFlag{
				Name:    "term",
				Aliases: []string{"t"},
				Usage:   "Term to search as [name=]text; replaces the plan terms",
			},
			&cli.IntFlag{
				Name:  "min-skip",
				Usage: "Smallest skip magnitude",
			},
			&cli.IntFlag{
				Name:  "max-skip",
				Usage: "Largest skip magnitude",
			},
			&cli.BoolFlag{
				Name:  "forward-only",
				Usage: "Do not search negative skips",
			},
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "Report pairs whose start indices differ by less than this",
			},
			&cli.IntFlag{
				Name:  "max-matches",
				Usage: "Keep at most this many matches per term",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Worker pool size (0 for one per CPU)",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Normalization alphabet (hebrew, hebrew-folded, latin)",
			},
			&cli.StringSliceFlag{
				Name:  "variant",
				Usage: "Also search the term enciphered with atbash or albam",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show scan progress on stderr",
			},
			&cli.IntFlag{
				Name:  "report-interval",
				Usage: "Report progress every N skips",
				Value: 50,
			},
			&cli.IntFlag{
				Name:  "max-pairs",
				Usage: "List at most this many pairs (0 for all)",
			},
			&cli.IntFlag{
				Name:  "context",
				Usage: "Show this many letters either side of each paired match",
			},
		),
	}
}

// buildPlan loads the plan file, if any, and applies flag overrides.
func buildPlan(c *cli.Context) (*plan.Plan, error) {
	p := plan.DefaultPlan()
	if path := c.String("plan"); path != "" {
		loaded, err := plan.Load(path)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	if c.IsSet("term") {
		p.Terms = nil
		for _, arg := range c.StringSlice("term") {
			name, text, err := parseTerm(arg)
			if err != nil {
				return nil, err
			}
			p.Terms = append(p.Terms, plan.TermSpec{Name: name, Text: text})
		}
	}
	if c.IsSet("min-skip") {
		p.MinSkip = c.Int("min-skip")
	}
	if c.IsSet("max-skip") {
		p.MaxSkip = c.Int("max-skip")
	}
	if c.Bool("forward-only") {
		p.Bidirectional = false
	}
	if c.IsSet("threshold") {
		p.Threshold = c.Int("threshold")
	}
	if c.IsSet("max-matches") {
		p.MaxMatchesPerTerm = c.Int("max-matches")
	}
	if c.IsSet("workers") {
		p.Workers = c.Int("workers")
	}
	if c.IsSet("alphabet") {
		p.Alphabet = c.String("alphabet")
	}
	if c.IsSet("variant") {
		p.Variants = c.StringSlice("variant")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func scanAction(c *cli.Context) error {
	p, err := buildPlan(c)
	if err != nil {
		return err
	}
	n, err := p.Normalizer()
	if err != nil {
		return err
	}
	src, err := loadCorpus(c, n)
	if err != nil {
		return err
	}

	wb, err := elscan.NewWorkbench(c.String("db"), elscan.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer wb.Close()

	var monitor els.ScanMonitor
	if c.Bool("progress") {
		monitor = els.NewProgressTracker(os.Stderr, c.Int("report-interval"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, err := wb.Run(ctx, src.Stream, p, monitor)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return report.Write(c.App.Writer, r,
		report.WithLocator(bookLocator(src)),
		report.WithContext(src.Stream, c.Int("context")),
		report.WithMaxPairs(c.Int("max-pairs")),
	)
}
