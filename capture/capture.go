package capture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/errorutil"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
)

// ErrNoScreenshot is returned when the tool exits successfully without writing the file,
// e.g. the interactive selection was cancelled.
var ErrNoScreenshot = errors.New("no screenshot was taken")

// Artifact is a screenshot written to disk.
type Artifact struct {
	Path string
	Name string
	Size int64
}

// Runner runs an external program to completion and returns its combined output.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

type commandRunner struct {
	factory command.Factory
}

// NewCommandRunner returns a Runner backed by the go-utils command factory.
func NewCommandRunner(factory command.Factory) Runner {
	return commandRunner{factory: factory}
}

func (r commandRunner) Run(name string, args ...string) (string, error) {
	cmd := r.factory.Create(name, args, nil)
	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if err != nil {
		if errorutil.IsExitStatusError(err) {
			return out, fmt.Errorf("%s failed: %s", cmd.PrintableCommandArgs(), out)
		}
		return out, fmt.Errorf("%s failed: %w", cmd.PrintableCommandArgs(), err)
	}
	return out, nil
}

// Capturer takes screenshots with the platform's screenshot tool.
type Capturer struct {
	logger log.Logger
	runner Runner
	goos   string
}

// NewCapturer ...
func NewCapturer(goos string, runner Runner, logger log.Logger) *Capturer {
	return &Capturer{
		logger: logger,
		runner: runner,
		goos:   goos,
	}
}

// Capture runs the screenshot tool once, synchronously, writing a PNG to pth.
func (c *Capturer) Capture(mode Mode, pth string) (Artifact, error) {
	tool, err := ToolFor(c.goos)
	if err != nil {
		return Artifact{}, err
	}

	args, err := tool.Args(mode, pth)
	if err != nil {
		return Artifact{}, err
	}

	c.logger.Debugf("Take %s screenshot: %s %v", mode, tool.Name, args)

	out, err := c.runner.Run(tool.Name, args...)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to take %s screenshot: %w", mode, err)
	}
	if out != "" {
		c.logger.Debugf("%s output: %s", tool.Name, out)
	}

	info, err := os.Stat(pth)
	if errors.Is(err, os.ErrNotExist) {
		return Artifact{}, fmt.Errorf("%s: %w", pth, ErrNoScreenshot)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to check screenshot (%s): %w", pth, err)
	}
	if info.IsDir() {
		return Artifact{}, fmt.Errorf("screenshot path (%s) is a directory", pth)
	}

	return Artifact{
		Path: pth,
		Name: filepath.Base(pth),
		Size: info.Size(),
	}, nil
}
