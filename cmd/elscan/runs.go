package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/elscan"
	"github.com/poiesic/elscan/report"
	"github.com/urfave/cli/v2"
)

func runsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List, show or delete stored scan runs",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the most recent runs",
				Action: runsListAction,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of runs to list",
						Value: 10,
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Print a stored run report",
				ArgsUsage: "run-id",
				Action:    runsShowAction,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "max-pairs",
						Usage: "List at most this many pairs (0 for all)",
					},
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a stored run",
				ArgsUsage: "run-id",
				Action:    runsDeleteAction,
				Flags:     []cli.Flag{dbFlag()},
			},
		},
	}
}

func openWorkbench(c *cli.Context) (*elscan.Workbench, error) {
	return elscan.NewWorkbench(c.String("db"), elscan.WithLogger(slog.Default()))
}

func runID(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected a run id")
	}
	return c.Args().First(), nil
}

func runsListAction(c *cli.Context) error {
	wb, err := openWorkbench(c)
	if err != nil {
		return err
	}
	defer wb.Close()

	reports, err := wb.Reports(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(c.App.Writer, "no runs")
		return nil
	}
	for _, r := range reports {
		fmt.Fprintln(c.App.Writer, report.Summary(r))
	}
	return nil
}

func runsShowAction(c *cli.Context) error {
	id, err := runID(c)
	if err != nil {
		return err
	}
	wb, err := openWorkbench(c)
	if err != nil {
		return err
	}
	defer wb.Close()

	r, err := wb.Report(context.Background(), id)
	if err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return report.Write(c.App.Writer, r, report.WithMaxPairs(c.Int("max-pairs")))
}

func runsDeleteAction(c *cli.Context) error {
	id, err := runID(c)
	if err != nil {
		return err
	}
	wb, err := openWorkbench(c)
	if err != nil {
		return err
	}
	defer wb.Close()

	if err := wb.DeleteReport(context.Background(), id); err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", id)
	return nil
}
