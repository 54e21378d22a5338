package config

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Load reads the file at path (yaml, toml, json or properties, by
// extension) and overlays every key it sets on top of the defaults.
// Keys not present in the file keep their default value.
func Load(path string) (GameConfig, LogConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Default(), Log, fmt.Errorf("read config %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (GameConfig, LogConfig, error) {
	g := Default()
	l := Log
	o := overlay{v: v}

	o.float("scene.width", &g.Scene.Width)
	o.float("scene.height", &g.Scene.Height)
	o.int("scene.tps", &g.Scene.TPS)

	o.float("paddle.widthRatio", &g.Paddle.WidthRatio)
	o.float("paddle.heightRatio", &g.Paddle.HeightRatio)
	o.float("paddle.yOffset", &g.Paddle.YOffset)
	o.float("paddle.margin", &g.Paddle.Margin)
	o.enum("paddle.marginMode", func(s string) error {
		m, err := ParseMarginMode(s)
		g.Paddle.MarginMode = m
		return err
	})

	o.float("ball.radiusRatio", &g.Ball.RadiusRatio)
	o.float("ball.minSpeed", &g.Ball.MinSpeed)
	o.float("ball.maxSpeed", &g.Ball.MaxSpeed)
	o.float("ball.serveX", &g.Ball.ServeX)
	o.float("ball.serveY", &g.Ball.ServeY)

	o.float("walls.thickness", &g.Walls.Thickness)
	o.bool("walls.endWallsScore", &g.Walls.EndWallsScore)
	o.float("walls.nudgeMagnitude", &g.Walls.NudgeMagnitude)
	o.float("walls.nudgeEpsilon", &g.Walls.NudgeEpsilon)

	o.float("governor.acceleration", &g.Governor.Acceleration)
	o.enum("governor.mode", func(s string) error {
		m, err := ParseGovernorMode(s)
		g.Governor.Mode = m
		return err
	})

	o.int("round.winningScore", &g.Round.WinningScore)

	o.bool("pointer.serveOnDown", &g.Pointer.ServeOnDown)
	o.enum("pointer.mapping", func(s string) error {
		m, err := ParseMappingPolicy(s)
		g.Pointer.Mapping = m
		return err
	})

	o.float("ai.followDuration", &g.AI.FollowDuration)
	o.enum("ai.strategy", func(s string) error {
		m, err := ParseAIStrategy(s)
		g.AI.Strategy = m
		return err
	})

	o.string("log.level", &l.Level)
	o.string("log.format", &l.Format)
	o.string("log.filename", &l.Filename)
	o.int("log.maxSize", &l.MaxSize)
	o.int("log.maxBackups", &l.MaxBackups)
	o.int("log.maxAge", &l.MaxAge)
	o.bool("log.compress", &l.Compress)

	if o.err != nil {
		return Default(), Log, o.err
	}
	if err := g.Validate(); err != nil {
		return Default(), Log, err
	}
	return g, l, nil
}

// Validate rejects configurations the simulation cannot run with.
func (g GameConfig) Validate() error {
	switch {
	case g.Scene.Width <= 0 || g.Scene.Height <= 0:
		return fmt.Errorf("scene size must be positive, got %vx%v", g.Scene.Width, g.Scene.Height)
	case g.Scene.TPS <= 0:
		return fmt.Errorf("scene.tps must be positive, got %d", g.Scene.TPS)
	case g.Paddle.WidthRatio <= 0 || g.Paddle.HeightRatio <= 0 || g.Ball.RadiusRatio <= 0:
		return fmt.Errorf("size ratios must be positive")
	case g.Paddle.MarginMode == MarginCustom && g.Paddle.Margin < 0:
		return fmt.Errorf("paddle.margin must not be negative, got %v", g.Paddle.Margin)
	case 2*g.Paddle.EdgeMargin(g.Scene.Width) > g.Scene.Width:
		return fmt.Errorf("paddle margin %v leaves no room to move in a scene %v wide",
			g.Paddle.EdgeMargin(g.Scene.Width), g.Scene.Width)
	case g.Ball.MinSpeed <= 0:
		return fmt.Errorf("ball.minSpeed must be positive, got %v", g.Ball.MinSpeed)
	case g.Ball.ServeX == 0 && g.Ball.ServeY == 0:
		return fmt.Errorf("serve velocity must be non-zero")
	case g.Round.WinningScore < 0:
		return fmt.Errorf("round.winningScore must not be negative, got %d", g.Round.WinningScore)
	case g.AI.Strategy == AITween && g.AI.FollowDuration <= 0:
		return fmt.Errorf("ai.followDuration must be positive for the tween strategy")
	}
	return nil
}

// overlay copies set keys into typed fields, keeping the first error.
type overlay struct {
	v   *viper.Viper
	err error
}

func (o *overlay) set(key string) bool {
	return o.err == nil && o.v.IsSet(key)
}

func (o *overlay) fail(key string, err error) {
	o.err = fmt.Errorf("config key %s: %w", key, err)
}

func (o *overlay) float(key string, dst *float64) {
	if !o.set(key) {
		return
	}
	f, err := cast.ToFloat64E(o.v.Get(key))
	if err != nil {
		o.fail(key, err)
		return
	}
	*dst = f
}

func (o *overlay) int(key string, dst *int) {
	if !o.set(key) {
		return
	}
	i, err := cast.ToIntE(o.v.Get(key))
	if err != nil {
		o.fail(key, err)
		return
	}
	*dst = i
}

func (o *overlay) bool(key string, dst *bool) {
	if !o.set(key) {
		return
	}
	b, err := cast.ToBoolE(o.v.Get(key))
	if err != nil {
		o.fail(key, err)
		return
	}
	*dst = b
}

func (o *overlay) string(key string, dst *string) {
	if !o.set(key) {
		return
	}
	*dst = cast.ToString(o.v.Get(key))
}

func (o *overlay) enum(key string, parse func(string) error) {
	if !o.set(key) {
		return
	}
	if err := parse(cast.ToString(o.v.Get(key))); err != nil {
		o.fail(key, err)
	}
}
