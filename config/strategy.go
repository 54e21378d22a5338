package config

import (
	"fmt"
	"strings"
)

// MappingPolicy selects how pointer x is turned into paddle x
type MappingPolicy int

const (
	MappingAbsolute MappingPolicy = iota // Clamp pointer x into paddle bounds
	MappingDelta                         // Accumulate pointer movement onto paddle x
)

// AIStrategy selects how the top paddle follows the ball
type AIStrategy int

const (
	AITeleport AIStrategy = iota
	AITween
)

// GovernorMode selects how the minimum ball speed is enforced
type GovernorMode int

const (
	GovernorPerTick    GovernorMode = iota // Snap to minimum speed every tick
	GovernorTimeScaled                     // Accelerate toward minimum speed using elapsed time
)

// MarginMode selects the distance kept between paddle center and scene edge
type MarginMode int

const (
	MarginFullWidth MarginMode = iota
	MarginHalfWidth
	MarginCustom
)

var (
	mappingNames  = []string{"absolute", "delta"}
	aiNames       = []string{"teleport", "tween"}
	governorNames = []string{"per-tick", "time-scaled"}
	marginNames   = []string{"full-width", "half-width", "custom"}
)

func (m MappingPolicy) String() string { return enumName(mappingNames, int(m)) }
func (s AIStrategy) String() string    { return enumName(aiNames, int(s)) }
func (g GovernorMode) String() string  { return enumName(governorNames, int(g)) }
func (m MarginMode) String() string    { return enumName(marginNames, int(m)) }

// ParseMappingPolicy parses "absolute" or "delta".
func ParseMappingPolicy(s string) (MappingPolicy, error) {
	i, err := parseEnum("mapping policy", mappingNames, s)
	return MappingPolicy(i), err
}

// ParseAIStrategy parses "teleport" or "tween".
func ParseAIStrategy(s string) (AIStrategy, error) {
	i, err := parseEnum("ai strategy", aiNames, s)
	return AIStrategy(i), err
}

// ParseGovernorMode parses "per-tick" or "time-scaled".
func ParseGovernorMode(s string) (GovernorMode, error) {
	i, err := parseEnum("governor mode", governorNames, s)
	return GovernorMode(i), err
}

// ParseMarginMode parses "full-width", "half-width" or "custom".
func ParseMarginMode(s string) (MarginMode, error) {
	i, err := parseEnum("margin mode", marginNames, s)
	return MarginMode(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}
