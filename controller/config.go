package controller

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/buttonfx"
)

var (
	ErrEmptySpritePool = errors.New("sprite pool is empty")
	ErrNoTarget        = errors.New("animated target is not set")
	ErrBadDuration     = errors.New("duration must be positive")
	ErrUnknownEase     = errors.New("unknown ease")
)

// Config holds the tunables of the coordinator. Zero values are replaced by
// defaults when parsed.
type Config struct {
	// TargetScale is the scale the Scale effect grows to.
	TargetScale buttonfx.Vec2 `yaml:"target_scale"`
	// JumpHeight is how far the Jump effect raises the target, in pixels.
	JumpHeight float64 `yaml:"jump_height"`
	// Duration is the duration of each effect phase, in seconds.
	Duration float32 `yaml:"duration"`
	// FadeRestoreDuration is how long Fade takes to bring the color back.
	FadeRestoreDuration float32 `yaml:"fade_restore_duration"`
	// Ease names the easing used by Scale and Jump (see EaseNames).
	Ease string `yaml:"ease"`
	// CancelOnReset kills running animations before Reset restores the
	// snapshot. When false, in-flight tweens keep writing after the restore.
	CancelOnReset bool `yaml:"cancel_on_reset"`
	// Sprites lists hex colors (#rrggbb) the demo turns into the sprite pool.
	Sprites []string `yaml:"sprites"`
	// Verbose logs every click to stderr.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		TargetScale:         buttonfx.Vec2{X: 2, Y: 2},
		JumpHeight:          300,
		Duration:            1,
		FadeRestoreDuration: 1,
		Ease:                "outquad",
		Sprites:             []string{"#e05050", "#50a0e0", "#60d070"},
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data, fills defaults for zero values and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.TargetScale == (buttonfx.Vec2{}) {
		c.TargetScale = d.TargetScale
	}
	if c.JumpHeight == 0 {
		c.JumpHeight = d.JumpHeight
	}
	if c.Duration == 0 {
		c.Duration = d.Duration
	}
	if c.FadeRestoreDuration == 0 {
		c.FadeRestoreDuration = d.FadeRestoreDuration
	}
	if c.Ease == "" {
		c.Ease = d.Ease
	}
	if len(c.Sprites) == 0 {
		c.Sprites = d.Sprites
	}
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration %v: %w", c.Duration, ErrBadDuration)
	}
	if c.FadeRestoreDuration <= 0 {
		return fmt.Errorf("fade_restore_duration %v: %w", c.FadeRestoreDuration, ErrBadDuration)
	}
	if _, err := LookupEase(c.Ease); err != nil {
		return err
	}
	for _, s := range c.Sprites {
		if _, err := ParseHexColor(s); err != nil {
			return err
		}
	}
	return nil
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// EaseNames returns the accepted values of Config.Ease, sorted.
func EaseNames() []string {
	return slices.Sorted(maps.Keys(easeFuncs))
}

// LookupEase resolves an easing name, ignoring case, dashes and underscores.
func LookupEase(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	fn, ok := easeFuncs[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEase)
	}
	return fn, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a Color.
func ParseHexColor(s string) (buttonfx.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return buttonfx.Color{}, fmt.Errorf("sprite color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return buttonfx.Color{}, fmt.Errorf("sprite color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return buttonfx.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
