package scenario

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/zeebo/errs"
)

var Error = errs.Class("scenario")

const defaultThreshold = 1.5

type Config struct {
	Inputs    []any    `json:"inputs"`
	Default   *float64 `json:"default"`
	Threshold *float64 `json:"threshold"`
	Parallel  int      `json:"parallel"`
}

// DefaultConfig is the log10 example: two numbers and a word.
func DefaultConfig() Config {
	return Config{
		Inputs: []any{10.0, 100.0, "thousand"},
	}
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}

	return Parse(raw)
}

func Parse(raw []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, Error.Wrap(err)
	}

	if config.Parallel < 0 {
		return Config{}, Error.New("parallel:%d must not be negative", config.Parallel)
	}

	if config.Inputs == nil {
		config.Inputs = DefaultConfig().Inputs
	}

	return config, nil
}

func (c Config) otherwise() float64 {
	if c.Default == nil {
		return math.NaN()
	}

	return *c.Default
}

func (c Config) threshold() float64 {
	if c.Threshold == nil {
		return defaultThreshold
	}

	return *c.Threshold
}
