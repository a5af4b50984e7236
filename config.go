package fsrs

import (
	"encoding"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultRequestRetention = 0.9
	defaultMaximumInterval  = 36500
)

// Mode selects the scheduling strategy a Scheduler uses.
type Mode int

const (
	ModeBasic     Mode = iota // Learning steps, one outcome per review.
	ModeShortTerm             // Like ModeBasic, without elapsed-day correction.
	ModeLongTerm              // No learning steps; all four outcomes at once.
)

var modeEnum = newEnum[Mode]("Mode", ErrInvalidConfig, "basic", "short_term", "long_term")

var (
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

func (m Mode) isValid() bool {
	return m >= ModeBasic && m <= ModeLongTerm
}

// String returns the config name of the mode.
func (m Mode) String() string { return modeEnum.format(m) }

func (m Mode) MarshalText() ([]byte, error) { return modeEnum.marshalText(m) }

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := modeEnum.unmarshalText(text)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Config configures a Model and a Scheduler.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	Weights          []float64 `json:"weights" yaml:"weights"`                     // nil → DefaultWeights; 17 or 19 values
	RequestRetention float64   `json:"request_retention" yaml:"request_retention"` // zero → 0.9
	MaximumInterval  int       `json:"maximum_interval" yaml:"maximum_interval"`   // zero → 36500
	EnableFuzz       bool      `json:"enable_fuzz" yaml:"enable_fuzz"`
	Seed             int64     `json:"seed" yaml:"seed"` // fuzz seed
	Mode             Mode      `json:"mode" yaml:"mode"` // zero → basic
}

// NewModel builds a Model from cfg. Zero-value fields are filled with
// defaults; invalid values return an error wrapping ErrInvalidParameters or
// ErrInvalidConfig.
func NewModel(cfg Config) (*Model, error) {
	w, err := weightsFrom(cfg.Weights)
	if err != nil {
		return nil, err
	}
	if err := ValidateWeights(w); err != nil {
		return nil, err
	}

	rr := cfg.RequestRetention
	if rr == 0 {
		rr = defaultRequestRetention
	}
	if !(rr > 0 && rr <= 1) {
		return nil, fmt.Errorf("%w: request retention %f out of range (0, 1]", ErrInvalidConfig, rr)
	}

	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = defaultMaximumInterval
	}
	if maxIvl < 0 {
		return nil, fmt.Errorf("%w: maximum interval %d must be positive", ErrInvalidConfig, maxIvl)
	}

	return &Model{
		w:                w,
		requestRetention: rr,
		maximumInterval:  maxIvl,
		enableFuzz:       cfg.EnableFuzz,
		seed:             cfg.Seed,
	}, nil
}

// ParseConfig decodes a YAML (or JSON) document into a Config.
// Defaults are applied later, by NewModel.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !cfg.Mode.isValid() {
		return Config{}, fmt.Errorf("%w: mode %d", ErrInvalidConfig, int(cfg.Mode))
	}
	return cfg, nil
}

// LoadConfig reads and decodes the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// config reports the model settings back as a Config.
func (m *Model) config() Config {
	w := m.w
	return Config{
		Weights:          w[:],
		RequestRetention: m.requestRetention,
		MaximumInterval:  m.maximumInterval,
		EnableFuzz:       m.enableFuzz,
		Seed:             m.seed,
	}
}
