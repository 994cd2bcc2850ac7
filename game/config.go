package game

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Mines  int   `yaml:"mines"`
	Seed   int64 `yaml:"seed"`

	// Let the computer play
	Director bool `yaml:"director"`
	// How often the director acts
	DirectorInterval time.Duration `yaml:"director_interval"`

	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
}

func NewConfig() Config {
	return Config{
		Width:            5,
		Height:           5,
		Mines:            5,
		DirectorInterval: 500 * time.Millisecond,
		WindowWidth:      1280,
		WindowHeight:     720,
	}
}

// LoadConfig reads YAML from in over the defaults of NewConfig
func LoadConfig(in io.Reader) (Config, error) {
	config := NewConfig()

	raw, err := ioutil.ReadAll(in)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(raw, &config); err != nil {
		return config, errors.Wrap(err, "parsing config")
	}
	return config, nil
}

func (config Config) Params() Params {
	return Params{
		Width:  config.Width,
		Height: config.Height,
		Mines:  config.Mines,
		Seed:   config.Seed,
	}
}

func (config Config) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}
	return string(out)
}
