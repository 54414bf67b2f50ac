package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/els"
	"github.com/poiesic/elscan/normalize"
	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find one term at every skip in a window",
		ArgsUsage: "[name=]text",
		Action:    searchAction,
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Normalization alphabet (hebrew, hebrew-folded, latin)",
				Value: "hebrew",
			},
			&cli.IntFlag{
				Name:  "min-skip",
				Usage: "Smallest skip magnitude",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "max-skip",
				Usage: "Largest skip magnitude",
				Value: 200,
			},
			&cli.BoolFlag{
				Name:  "forward-only",
				Usage: "Do not search negative skips",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum matches to print (0 for all)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Worker pool size (0 for one per CPU)",
			},
		),
	}
}

func searchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one term, got %d", c.NArg())
	}
	name, text, err := parseTerm(c.Args().First())
	if err != nil {
		return err
	}

	alphabet, err := normalize.ByName(c.String("alphabet"))
	if err != nil {
		return err
	}
	n := normalize.New(alphabet)
	term := n.Term(name, text)
	if err := core.ValidateTerm(term); err != nil {
		return err
	}

	windows := core.Bidirectional(c.Int("min-skip"), c.Int("max-skip"))
	if c.Bool("forward-only") {
		windows = windows[:1]
	}

	src, err := loadCorpus(c, n)
	if err != nil {
		return err
	}

	opts := []els.Option{els.WithMaxMatches(c.Int("limit")), els.WithLogger(slog.Default())}
	if w := c.Int("workers"); w > 0 {
		opts = append(opts, els.WithPoolSize(w))
	}
	scanner, err := els.NewScanner(opts...)
	if err != nil {
		return err
	}
	defer scanner.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matches, err := scanner.Scan(ctx, els.NewIndex(src.Stream), term, windows...)
	if err != nil {
		return err
	}

	locate := bookLocator(src)
	out := c.App.Writer
	fmt.Fprintf(out, "Searching for '%s' (%s) in %d symbols\n", term.Name, term.Text(), src.Stream.Len())
	for _, m := range matches {
		fmt.Fprintf(out, "  Index %d, Skip %d", m.Start, m.Skip)
		if book := locate(m.Start); book != "" {
			fmt.Fprintf(out, " (%s)", book)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d matches\n", len(matches))
	return nil
}
