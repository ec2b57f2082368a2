package main

import (
	"fmt"
	"os"

	"hitgrid/config"
	"hitgrid/logging"
	"hitgrid/ui"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "hitgrid"
	app.Usage = "move a cursor over an 8x8 grid and toggle cells"
	app.Flags = config.Flags()
	app.Action = func(c *cli.Context) error {
		cfg, err := config.FromContext(c)
		if err != nil {
			return err
		}

		logger, err := logging.New(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}

		// does not return; the process exits when the window closes
		ui.Run(cfg, logger)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
