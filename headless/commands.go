package headless

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/skpong/sim"
	"github.com/sirupsen/logrus"
)

var ErrUnknownCommand = errors.New("unknown command")

var pointerVerbs = map[string]sim.PointerPhase{
	"down": sim.PointerDown,
	"move": sim.PointerMoved,
	"up":   sim.PointerUp,
}

// ParseCommand turns one input line into a queued command. Blank lines
// and lines starting with # yield a nil command and no error.
//
//	down X Y | move X Y | up X Y | serve | reset
func ParseCommand(line string) (sim.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])

	if phase, ok := pointerVerbs[verb]; ok {
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s: want 2 coordinates, got %d", verb, len(fields)-1)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad x: %w", verb, err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad y: %w", verb, err)
		}
		ev := sim.PointerEvent{Phase: phase, Position: sim.Vector{X: x, Y: y}}
		return func(s *sim.State) { s.HandlePointer(ev) }, nil
	}

	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	switch verb {
	case "serve":
		return func(s *sim.State) { s.Serve() }, nil
	case "reset":
		return (*sim.State).Reset, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
}

// ReadCommands parses lines from r and pushes them onto q until r is
// exhausted or ctx is done. Malformed lines are logged and skipped.
func ReadCommands(ctx context.Context, r io.Reader, q *sim.CommandQueue, log logrus.FieldLogger) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			log.WithError(err).WithField("line", lineNo).Warn("skipping command")
			continue
		}
		if cmd != nil {
			q.Push(cmd)
		}
	}
	return scanner.Err()
}
