package config

import (
	"fmt"
	"image/color"

	"hitgrid/palette"

	"gioui.org/unit"
	"github.com/urfave/cli"
)

const (
	DefaultHitColor   = "blue"
	DefaultEmptyColor = "red"
	DefaultCellSize   = 50
	DefaultLogLevel   = "info"
)

// Config holds the launch options. The zero flags give the stock look.
type Config struct {
	HitColor   color.NRGBA
	EmptyColor color.NRGBA
	CellSize   unit.Dp
	LogLevel   string
}

func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "hit-color",
			Value: DefaultHitColor,
			Usage: "initial color of toggled cells, as a name or #rrggbb",
		},
		cli.StringFlag{
			Name:  "empty-color",
			Value: DefaultEmptyColor,
			Usage: "color of cells that are not toggled",
		},
		cli.IntFlag{
			Name:  "cell-size",
			Value: DefaultCellSize,
			Usage: "side of one cell in dp",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: DefaultLogLevel,
			Usage: "debug, info, warn or error",
		},
	}
}

func FromContext(c *cli.Context) (Config, error) {
	hit, err := palette.Parse(c.String("hit-color"))
	if err != nil {
		return Config{}, fmt.Errorf("hit-color: %w", err)
	}

	empty, err := palette.Parse(c.String("empty-color"))
	if err != nil {
		return Config{}, fmt.Errorf("empty-color: %w", err)
	}

	size := c.Int("cell-size")
	if size < 10 || size > 200 {
		return Config{}, fmt.Errorf("cell-size: %d out of range [10, 200]", size)
	}

	return Config{
		HitColor:   hit,
		EmptyColor: empty,
		CellSize:   unit.Dp(size),
		LogLevel:   c.String("log-level"),
	}, nil
}
