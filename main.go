package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/b2-screenshot/b2-screenshot/capture"
	"github.com/b2-screenshot/b2-screenshot/naming"
	"github.com/b2-screenshot/b2-screenshot/outputdir"
	"github.com/b2-screenshot/b2-screenshot/uploaders"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

type screenshotter interface {
	Capture(mode capture.Mode, pth string) (capture.Artifact, error)
}

type app struct {
	logger          log.Logger
	envRepo         env.Repository
	dirResolver     outputdir.Resolver
	capturer        screenshotter
	newUploader     func(config uploaders.Config) uploaders.Uploader
	copyToClipboard func(text string) error
}

func newApp(logger log.Logger, envRepo env.Repository) app {
	return app{
		logger:      logger,
		envRepo:     envRepo,
		dirResolver: outputdir.NewResolver(pathutil.NewPathModifier(), pathutil.NewPathChecker()),
		capturer:    capture.NewCapturer(runtime.GOOS, capture.NewCommandRunner(command.NewFactory(envRepo)), logger),
		newUploader: func(config uploaders.Config) uploaders.Uploader {
			return uploaders.NewB2Uploader(config, logger)
		},
		copyToClipboard: clipboard.WriteAll,
	}
}

func main() {
	// The url is the only thing written to the real stdout, every log line goes to stderr.
	urlOut := os.Stdout
	os.Stdout = os.Stderr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewLogger()
	if err := run(ctx, os.Args[1:], urlOut, newApp(logger, env.NewRepository())); err != nil {
		logger.Errorf("%s", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, a app) error {
	var opts options
	cmd := newRootCommand(&opts, func(ctx context.Context) error {
		return a.execute(ctx, opts, stdout)
	})

	if len(args) == 0 {
		_ = cmd.Usage()
		return errUsage
	}

	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (a app) execute(ctx context.Context, opts options, stdout io.Writer) error {
	a.logger.EnableDebugLog(opts.debug)

	mode, err := opts.captureMode()
	if err != nil {
		return err
	}
	nameStyle, err := naming.ParseStyle(opts.nameStyle)
	if err != nil {
		return err
	}
	urlStyle, err := uploaders.ParseURLStyle(opts.urlStyle)
	if err != nil {
		return err
	}

	loaded, err := loadEnvFile(a.envRepo, opts.envFile)
	if err != nil {
		return err
	}
	if loaded > 0 {
		a.logger.Debugf("Loaded %d variable(s) from %s", loaded, opts.envFile)
	}

	config, err := parseConfig(a.envRepo)
	if err != nil {
		return fmt.Errorf("issue with input: %w", err)
	}
	stepconf.Print(config)

	dir, err := a.dirResolver.Resolve(opts.directory)
	if err != nil {
		return err
	}

	name := naming.NewGenerator(nameStyle).Generate()
	pth := filepath.Join(dir, name)

	a.logger.Infof("Taking %s screenshot", mode)
	artifact, err := a.capturer.Capture(mode, pth)
	if err != nil {
		return err
	}
	a.logger.Printf("saved %s", artifact.Path)

	a.logger.Infof("Uploading %s", artifact.Name)
	result, err := a.newUploader(config.uploaderConfig(urlStyle)).Upload(ctx, artifact.Path, artifact.Name)
	if err != nil {
		return fmt.Errorf("upload failed, screenshot kept at %s: %w", artifact.Path, err)
	}
	a.logger.Donef("Success")

	if _, err := fmt.Fprintln(stdout, result.URL); err != nil {
		return fmt.Errorf("failed to print url: %w", err)
	}

	if opts.copyURL {
		if err := a.copyToClipboard(result.URL); err != nil {
			a.logger.Warnf("Failed to copy url to clipboard: %s", err)
		} else {
			a.logger.Printf("url copied to clipboard")
		}
	}

	return nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
