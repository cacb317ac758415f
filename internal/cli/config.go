package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config supplies defaults for every flag in spec §6.3, loaded from the
// TOML file named by --config so a researcher running many sweeps
// doesn't have to repeat a long flag line. Flags passed on the command
// line always override these values.
type Config struct {
	Preprocessor  string `toml:"preprocessor"`
	Heuristic     string `toml:"heuristic"`
	MaxIterations int    `toml:"max_iterations"`
	MaxRuntime    string `toml:"max_runtime"`
	Seed          uint64 `toml:"seed"`
	Standard      bool   `toml:"standard"`
	ParetoPair    string `toml:"pareto_pair"`
	ObjectiveTag  string `toml:"objective_tag"`
	Verbose       bool   `toml:"verbose"`
	TraceEvery    int    `toml:"trace_frequency"`
	PostProcess   bool   `toml:"post_process"`
	StatusAddr    string `toml:"status_addr"`
	RedisAddr     string `toml:"redis_addr"`
	MongoURI      string `toml:"mongo_uri"`
}

// DefaultConfig returns the built-in defaults, used when no config file
// is present.
func DefaultConfig() Config {
	return Config{
		Preprocessor: "none",
		Heuristic:    "mod_bary",
		MaxIterations: 10000,
		Standard:      true,
		ParetoPair:    "none",
		ObjectiveTag:  "t",
		TraceEvery:    1,
	}
}

// LoadConfig reads a TOML config file at path, overlaying its values on
// top of DefaultConfig. A path that doesn't exist, or a file that is not
// valid TOML, is an error; the CLI calls LoadConfig only when --config
// names a file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
