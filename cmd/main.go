package main

import (
	"KeySweep/internal"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "keysweep",
		Usage:     "Scan files for private key headers and other secret signatures",
		ArgsUsage: "[filenames...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Write logs into file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent file workers (1 scans strictly in input order)",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "archives",
				Usage: "Also scan entries inside archive arguments (.zip,.tar,.gz,...)",
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))

			opts := internal.ScanOptions{
				Filenames: c.Args().Slice(),
				Workers:   c.Int("workers"),
				Archives:  c.Bool("archives"),
			}
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			opts.Prepare()

			if len(opts.Filenames) == 0 {
				logrus.Debug("No filenames given, nothing to scan")
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var stats internal.AppStats
			stats.Start()

			scanner := internal.NewSecretScanner()
			reports, err := scanner.Scan(ctx, opts, &stats)
			if err != nil {
				// Read errors are fatal for the whole run: no partial
				// report, no per-file skip.
				return cli.Exit(err.Error(), 1)
			}

			flagged := internal.PrintReports(os.Stdout, reports)

			logrus.WithFields(logrus.Fields{
				"elapsed":       stats.Elapsed().String(),
				"files":         stats.FilesScanned.Load(),
				"files_flagged": stats.FilesFlagged.Load(),
				"lines_flagged": stats.LinesFlagged.Load(),
			}).Info("Scan finished")

			if len(flagged) > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
