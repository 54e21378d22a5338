package config

import "image/color"

// SceneConfig describes the playing field in scene units (y grows upward).
type SceneConfig struct {
	Width  float64
	Height float64
	TPS    int // Host ticks per second
}

// PaddleConfig contains paddle sizing and bounds configuration
type PaddleConfig struct {
	// Sizing relative to the scene
	WidthRatio  float64 // paddle width = scene width / WidthRatio
	HeightRatio float64 // paddle height = scene height / HeightRatio
	YOffset     float64 // gap between paddle and its end of the scene, added to paddle height

	// Bounds
	MarginMode MarginMode
	Margin     float64 // Only used with MarginCustom
}

// EdgeMargin returns the distance between a paddle's center and the scene
// edge it may not cross, for a scene of the given width.
func (p PaddleConfig) EdgeMargin(sceneWidth float64) float64 {
	paddleW := sceneWidth / p.WidthRatio
	switch p.MarginMode {
	case MarginHalfWidth:
		return paddleW / 2
	case MarginCustom:
		return p.Margin
	default:
		return paddleW
	}
}

// BallConfig contains ball sizing and speed configuration
type BallConfig struct {
	RadiusRatio float64 // ball radius = paddle width / RadiusRatio
	MinSpeed    float64 // Units per second, enforced every tick while in play
	MaxSpeed    float64 // Per-axis clamp applied by the host integrator
	ServeX      float64
	ServeY      float64
}

// WallConfig contains boundary configuration
type WallConfig struct {
	Thickness      float64
	EndWallsScore  bool    // Top/bottom walls score instead of bouncing
	NudgeMagnitude float64 // Velocity added when the ball glides along a wall
	NudgeEpsilon   float64 // Component magnitude treated as gliding
}

// GovernorConfig selects how the minimum ball speed is enforced
type GovernorConfig struct {
	Mode         GovernorMode
	Acceleration float64 // Units per second squared, time-scaled mode only
}

// RoundConfig contains scoring configuration
type RoundConfig struct {
	WinningScore int // 0 keeps the rally going forever
}

// PointerConfig contains pointer mapping configuration
type PointerConfig struct {
	Mapping     MappingPolicy
	ServeOnDown bool
}

// AIConfig contains the top paddle autoplay configuration
type AIConfig struct {
	Strategy       AIStrategy
	FollowDuration float64 // Seconds, tween strategy only
}

// GameConfig groups everything the simulation needs
type GameConfig struct {
	Scene    SceneConfig
	Paddle   PaddleConfig
	Ball     BallConfig
	Walls    WallConfig
	Governor GovernorConfig
	Round    RoundConfig
	Pointer  PointerConfig
	AI       AIConfig
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level      string
	Format     string // "text" or "json"
	Filename   string // Empty logs to stderr
	MaxSize    int    // Megabytes
	MaxBackups int
	MaxAge     int // Days
	Compress   bool
}

// ColorConfig contains the flat colors used by the window host
type ColorConfig struct {
	Background color.RGBA
	Paddle     color.RGBA
	Ball       color.RGBA
	Wall       color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
}

// DebugConfig contains debug toggles (defaults, can be overridden by CLI flags)
type DebugConfig struct {
	ShowBodies bool // Outline collision objects and print ball velocity
}

var (
	Game   GameConfig
	Log    LogConfig
	Colors ColorConfig
	Debug  DebugConfig
)

func init() {
	Game = Default()

	Log = LogConfig{
		Level:      "info",
		Format:     "text",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Paddle:     color.RGBA{R: 40, G: 90, B: 255, A: 255},
		Ball:       color.RGBA{R: 255, G: 220, B: 0, A: 255},
		Wall:       color.RGBA{R: 60, G: 60, B: 60, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Overlay:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Debug = DebugConfig{
		ShowBodies: false,
	}
}

// Default returns a fresh copy of the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		Scene: SceneConfig{
			Width:  400,
			Height: 640,
			TPS:    60,
		},
		Paddle: PaddleConfig{
			WidthRatio:  5,
			HeightRatio: 40,
			YOffset:     20,
			MarginMode:  MarginFullWidth,
		},
		Ball: BallConfig{
			RadiusRatio: 8,
			MinSpeed:    300,
			MaxSpeed:    1200,
			ServeX:      0,
			ServeY:      -300,
		},
		Walls: WallConfig{
			Thickness:      4,
			EndWallsScore:  true,
			NudgeMagnitude: 20,
			NudgeEpsilon:   0.01,
		},
		Governor: GovernorConfig{
			Mode:         GovernorPerTick,
			Acceleration: 600,
		},
		Round: RoundConfig{
			WinningScore: 0,
		},
		Pointer: PointerConfig{
			Mapping:     MappingAbsolute,
			ServeOnDown: true,
		},
		AI: AIConfig{
			Strategy:       AITeleport,
			FollowDuration: 0.2,
		},
	}
}
