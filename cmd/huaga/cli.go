package main

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	apppkg "github.com/kk-code-lab/huaga/internal/app"
	"github.com/kk-code-lab/huaga/internal/imaging"
	"github.com/kk-code-lab/huaga/internal/state"
)

var version = "dev"

// CLI is the command line of huaga.
type CLI struct {
	Path string `arg:"" optional:"" name:"image" help:"Image to open." type:"path"`

	Tick       time.Duration    `help:"Animation and render cadence." default:"${tick}"`
	MaxPixels  int              `help:"Largest image to decode, in pixels." default:"${max_pixels}"`
	MaxFrames  int              `help:"Most animation frames to decode." default:"${max_frames}"`
	SkipHidden bool             `help:"Skip hidden files when browsing."`
	NoWatch    bool             `help:"Do not reload the image when its file changes."`
	Fit        bool             `help:"Fit the first image to the terminal."`
	LogFile    string           `help:"Append logs to this file." type:"path"`
	Verbose    bool             `help:"Log debug records." short:"v"`
	Version    kong.VersionFlag `help:"Show version."`
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	defaults := imaging.DefaultOptions()
	return kong.New(cli,
		kong.Name("huaga"),
		kong.Description("Terminal image viewer. Ctrl+wheel zooms, clicks step through the directory."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"version":    version,
			"tick":       state.DefaultTickInterval.String(),
			"max_pixels": strconv.Itoa(defaults.MaxPixels),
			"max_frames": strconv.Itoa(defaults.MaxFrames),
		},
	)
}

func (c *CLI) options(logger *slog.Logger) apppkg.Options {
	return apppkg.Options{
		Path:       c.Path,
		Tick:       c.Tick,
		MaxPixels:  c.MaxPixels,
		MaxFrames:  c.MaxFrames,
		SkipHidden: c.SkipHidden,
		Watch:      !c.NoWatch,
		Fit:        c.Fit,
		Logger:     logger,
	}
}
