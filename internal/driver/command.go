package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized verbs.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a control action applied to a Driver.
type Command func(*Driver)

// ParseCommand turns a line of text into a Command. Recognized forms:
//
//	pause | resume | toggle | step | randomize
//	size N | speed N | seed N
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command: %w", ErrUnknownCommand)
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "pause", "resume", "toggle", "step", "randomize":
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments", verb)
		}
	case "size", "speed", "seed":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes one argument", verb)
		}
	default:
		return nil, fmt.Errorf("%q: %w", verb, ErrUnknownCommand)
	}

	switch verb {
	case "pause":
		return func(d *Driver) { d.SetRunning(false) }, nil
	case "resume":
		return func(d *Driver) { d.SetRunning(true) }, nil
	case "toggle":
		return (*Driver).TogglePause, nil
	case "step":
		return (*Driver).StepOnce, nil
	case "randomize":
		return (*Driver).Randomize, nil
	case "seed":
		seed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		return func(d *Driver) { d.Reset(seed) }, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", verb, err)
	}
	if verb == "size" {
		return func(d *Driver) { d.SetSize(n) }, nil
	}
	return func(d *Driver) { d.SetIntervalMs(n) }, nil
}
