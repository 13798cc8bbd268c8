// Chess - an interactive chess board built with Ebitengine
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hailam/chessgui/internal/app"
	"github.com/hailam/chessgui/internal/logx"
	"github.com/urfave/cli/v3"
)

func configFrom(c *cli.Command) app.Config {
	cfg := app.Config{
		FontPath: c.String("font"),
		Letters:  c.Bool("letters"),
		FEN:      c.String("fen"),
		Moves:    c.StringSlice("moves"),
		Select:   c.String("select"),
		DataDir:  c.String("data-dir"),
		NoStore:  c.Bool("no-store"),
	}
	// Unset sizes fall through to the stored preference.
	if c.IsSet("width") {
		cfg.Width = int(c.Int("width"))
	}
	if c.IsSet("height") {
		cfg.Height = int(c.Int("height"))
	}
	if c.IsSet("mute") {
		mute := c.Bool("mute")
		cfg.Mute = &mute
	}
	return cfg
}

// withApp builds the app for a command and closes it afterwards.
func withApp(c *cli.Command, fn func(a *app.App) error) error {
	log := logx.New(c.String("log-level"), c.Bool("log-dev"), os.Stderr)
	defer log.Sync() //nolint:errcheck

	a := app.New(configFrom(c), log)
	defer func() {
		if err := a.Close(); err != nil {
			log.Warnw("failed to close storage", "err", err)
		}
	}()

	if err := fn(a); err != nil {
		log.Errorw("command failed", "command", c.Name, "err", err)
		return err
	}
	return nil
}

func main() {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Usage: "board width in pixels",
			Value: 800,
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "board height in pixels",
			Value: 800,
		},
		&cli.StringFlag{
			Name:  "font",
			Usage: "path to a TTF/OTF font with chess glyphs",
		},
		&cli.BoolFlag{
			Name:  "letters",
			Usage: "draw pieces as letters instead of chess glyphs",
		},
		&cli.StringFlag{
			Name:  "fen",
			Usage: "string FEN format",
		},
		&cli.StringSliceFlag{
			Name:  "moves",
			Usage: "moves to apply before starting, e.g. e2e4,e7e5",
		},
		&cli.StringFlag{
			Name:  "select",
			Usage: "square to click before rendering, e.g. E2",
		},
		&cli.BoolFlag{
			Name:  "mute",
			Usage: "turn sound effects off (--mute=false turns them back on); remembered",
		},
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "directory for preferences and statistics",
		},
		&cli.BoolFlag{
			Name:  "no-store",
			Usage: "do not read or write preferences and statistics",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "level log",
			Value:   "info",
		},
		&cli.BoolFlag{
			Name:    "log-dev",
			Aliases: []string{"d"},
			Usage:   "dev encode log",
		},
	}

	cmd := &cli.Command{
		Name:  "chess",
		Usage: "interactive chess board",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return withApp(c, func(a *app.App) error {
				return a.Play(ctx)
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "snapshot",
				Usage: "render the board to a PNG image",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output file, - for stdout",
						Value:   "board.png",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(c, func(a *app.App) error {
						return a.Snapshot(c.String("out"))
					})
				},
			},
			{
				Name:  "show",
				Usage: "print the board to the terminal",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(c, func(a *app.App) error {
						return a.Show(os.Stdout)
					})
				},
			},
			{
				Name:  "stats",
				Usage: "print finished-game statistics",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(c, func(a *app.App) error {
						return a.Stats(os.Stdout)
					})
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
