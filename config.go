package imxform

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Engine names accepted in Config.Engine.
const (
	EngineImaging = "imaging"
	EngineXDraw   = "xdraw"
)

// DefaultJPEGQuality is used when a config leaves the quality unset.
const DefaultJPEGQuality = 85

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is the deployment configuration for descriptors and engines.
type Config struct {
	// DocumentRoot is prefixed to every image path by FullPath.
	DocumentRoot string `yaml:"document_root"`

	// Engine selects the pixel backend: "imaging" or "xdraw".
	Engine string `yaml:"engine"`

	// Background is the default matte colour; empty or "0" keeps transparency.
	Background string `yaml:"background,omitempty"`

	// JPEGQuality is the encoder quality for JPEG output, 1-100.
	JPEGQuality int `yaml:"jpeg_quality"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Engine:      EngineImaging,
		JPEGQuality: DefaultJPEGQuality,
	}
}

// LoadConfig reads a YAML config from path, expanding ${VAR} references.
// A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if cfg.JPEGQuality == 0 {
		cfg.JPEGQuality = DefaultJPEGQuality
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the engine name, quality range and background colour.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineImaging, EngineXDraw:
	default:
		return errors.Errorf("unknown engine %q", c.Engine)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("jpeg_quality %d out of range 1-100", c.JPEGQuality)
	}
	if !NoBackground(c.Background) {
		if _, err := ParseHexColor(c.Background); err != nil {
			return errors.Wrap(err, "background")
		}
	}
	return nil
}

// Options returns the descriptor options implied by the config.
func (c *Config) Options() []Option {
	return []Option{
		WithDocumentRoot(c.DocumentRoot),
		WithBackground(c.Background),
	}
}

func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
