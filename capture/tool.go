package capture

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when no screenshot tool is known for the OS.
var ErrUnsupportedPlatform = errors.New("screenshot capture is not supported on this platform")

// Mode ...
type Mode string

const (
	// ModeArea lets the user select an area.
	ModeArea Mode = "area"
	// ModeWindow captures the window the user picks.
	ModeWindow Mode = "window"
	// ModeScreen captures the whole screen.
	ModeScreen Mode = "screen"
)

// ParseMode ...
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(s); mode {
	case ModeArea, ModeWindow, ModeScreen:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid capture mode (%s), available: %s, %s, %s", s, ModeArea, ModeWindow, ModeScreen)
	}
}

// Tool is an external screenshot program and the flags it needs per mode.
// The output path is always passed as the last argument.
type Tool struct {
	Name     string
	modeArgs map[Mode][]string
}

var (
	screencapture = Tool{
		Name: "screencapture",
		modeArgs: map[Mode][]string{
			ModeArea:   {"-is"},
			ModeWindow: {"-iW"},
			ModeScreen: {"-S"},
		},
	}
	gnomeScreenshot = Tool{
		Name: "gnome-screenshot",
		modeArgs: map[Mode][]string{
			ModeArea:   {"-a", "-f"},
			ModeWindow: {"-w", "-f"},
			ModeScreen: {"-f"},
		},
	}
)

// ToolFor returns the screenshot tool of the given GOOS.
func ToolFor(goos string) (Tool, error) {
	switch goos {
	case "darwin":
		return screencapture, nil
	case "linux":
		return gnomeScreenshot, nil
	default:
		return Tool{}, fmt.Errorf("%s: %w", goos, ErrUnsupportedPlatform)
	}
}

// Args ...
func (t Tool) Args(mode Mode, pth string) ([]string, error) {
	flags, ok := t.modeArgs[mode]
	if !ok {
		return nil, fmt.Errorf("%s does not support capture mode (%s)", t.Name, mode)
	}

	args := make([]string, 0, len(flags)+1)
	args = append(args, flags...)
	return append(args, pth), nil
}
