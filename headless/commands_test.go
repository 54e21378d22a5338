package headless

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/logger"
	"github.com/automoto/skpong/sim"
)

func newState() *sim.State {
	return sim.NewState(config.Default(), sim.WithLogger(logger.Discard()))
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantCmd bool
		wantErr bool
	}{
		{"blank", "   ", false, false},
		{"comment", "# warm up", false, false},
		{"serve", "serve", true, false},
		{"reset upper case", "RESET", true, false},
		{"down", "down 10 20", true, false},
		{"move", "move 150.5 0", true, false},
		{"up", "up 1 2", true, false},
		{"missing coordinate", "move 1", false, true},
		{"bad number", "down a 2", false, true},
		{"unknown verb", "jump", false, true},
		{"serve with args", "serve now", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCommand(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("ParseCommand(%q) command present = %v, want %v", tt.line, cmd != nil, tt.wantCmd)
			}
		})
	}
}

func TestParseCommandUnknownIsSentinel(t *testing.T) {
	_, err := ParseCommand("jump")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestParsedCommandsDriveState(t *testing.T) {
	s := newState()

	apply := func(line string) {
		t.Helper()
		cmd, err := ParseCommand(line)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", line, err)
		}
		cmd(s)
	}

	apply("move 500 0")
	if got := s.PaddleX(sim.PaddleBottom); got != 320 {
		t.Errorf("paddle x = %v, want 320", got)
	}

	apply("serve")
	if s.RoundState() != sim.RoundInPlay {
		t.Fatalf("round = %v, want in play", s.RoundState())
	}
	if v := s.BallVelocity(); v.X != 0 || v.Y != -300 {
		t.Errorf("ball velocity = %+v, want (0, -300)", v)
	}

	apply("reset")
	if s.RoundState() != sim.RoundNotStarted {
		t.Errorf("round = %v after reset, want not started", s.RoundState())
	}
}

func TestReadCommandsSkipsBadLines(t *testing.T) {
	input := "serve\nbogus line\n\n# note\nmove 100 0\n"
	q := &sim.CommandQueue{}

	if err := ReadCommands(context.Background(), strings.NewReader(input), q, logger.Discard()); err != nil {
		t.Fatalf("ReadCommands: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("queued %d commands, want 2", q.Len())
	}

	s := newState()
	q.Drain(s)
	if s.RoundState() != sim.RoundInPlay {
		t.Errorf("round = %v, want in play", s.RoundState())
	}
	if got := s.PaddleX(sim.PaddleBottom); got != 100 {
		t.Errorf("paddle x = %v, want 100", got)
	}
}

func TestReadCommandsHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := &sim.CommandQueue{}
	err := ReadCommands(ctx, strings.NewReader("serve\n"), q, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if q.Len() != 0 {
		t.Errorf("queued %d commands after cancel, want 0", q.Len())
	}
}
