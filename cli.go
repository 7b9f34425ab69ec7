package main

import (
	"context"
	"errors"

	"github.com/b2-screenshot/b2-screenshot/capture"
	"github.com/b2-screenshot/b2-screenshot/naming"
	"github.com/b2-screenshot/b2-screenshot/uploaders"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("no arguments given")

type options struct {
	directory string
	area      bool
	window    bool
	screen    bool
	nameStyle string
	urlStyle  string
	copyURL   bool
	debug     bool
	envFile   string
}

func (o options) captureMode() (capture.Mode, error) {
	switch {
	case o.area:
		return capture.ModeArea, nil
	case o.window:
		return capture.ModeWindow, nil
	case o.screen:
		return capture.ModeScreen, nil
	default:
		return "", errors.New("one of --area, --window or --screen is required")
	}
}

func newRootCommand(opts *options, runE func(ctx context.Context) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "b2-screenshot --directory DIR (-a | -w | -s)",
		Short:         "Screenshot uploader to B2",
		Long:          "Takes a screenshot, uploads it to a B2 bucket and prints its public download url.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runE(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.directory, "directory", "", "Directory for output")
	flags.BoolVarP(&opts.area, "area", "a", false, "screenshot of a selected area")
	flags.BoolVarP(&opts.window, "window", "w", false, "screenshot of the current active window")
	flags.BoolVarP(&opts.screen, "screen", "s", false, "screenshot of the whole screen")
	flags.StringVar(&opts.nameStyle, "name-style", string(naming.StyleWords), "file name format: words or date")
	flags.StringVar(&opts.urlStyle, "url-style", string(uploaders.URLStyleName), "download url format: name or id")
	flags.BoolVar(&opts.copyURL, "copy", false, "copy the download url to the clipboard")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logs")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with B2_* variables, ignored when missing")

	_ = cmd.MarkFlagRequired("directory")
	cmd.MarkFlagsMutuallyExclusive("area", "window", "screen")
	cmd.MarkFlagsOneRequired("area", "window", "screen")

	return cmd
}
