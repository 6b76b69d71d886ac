package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"golang.org/x/mod/semver"

	"subc/report"
)

// CompilerVersion is the current version of the compiler.
const CompilerVersion = "0.1.0"

// FileName is the name of the configuration file looked for next to a source
// file.
const FileName = "subc.toml"

// Config is the build configuration of a compilation.
type Config struct {
	// The minimum compiler version the configuration requires.
	Version string `toml:"subc-version"`

	Build   BuildConfig   `toml:"build"`
	Listing ListingConfig `toml:"listing"`
}

// BuildConfig configures compilation output.
type BuildConfig struct {
	// The directory the generated assembly is written to.
	OutputDir string `toml:"output-dir"`

	// The name of the log level: one of report.LogLevelNames.
	LogLevel string `toml:"log-level"`
}

// ListingConfig configures the listings displayed after analysis.
type ListingConfig struct {
	Source bool `toml:"source"`
	XRef   bool `toml:"xref"`
}

// Default returns the configuration used when no configuration file exists.
func Default() *Config {
	return &Config{
		Version: CompilerVersion,
		Build: BuildConfig{
			OutputDir: ".",
			LogLevel:  "verbose",
		},
	}
}

// knownKeys lists the keys accepted in each table of the configuration file.
// The empty name is the root table.
var knownKeys = map[string]map[string]struct{}{
	"": {
		"subc-version": {},
		"build":        {},
		"listing":      {},
	},
	"build": {
		"output-dir": {},
		"log-level":  {},
	},
	"listing": {
		"source": {},
		"xref":   {},
	},
}

// Decode decodes the contents of a configuration file.  Fields missing from it
// keep their default values.  It also returns warnings about the contents
// which don't prevent compilation: eg. unknown keys.
func Decode(buff []byte) (*Config, []string, error) {
	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing config: %w", err)
	}

	warnings := checkKeys(tree, "")

	cfg := &Config{}
	if err := tree.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding config: %w", err)
	}

	def := Default()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}

	if cfg.Build.OutputDir == "" {
		cfg.Build.OutputDir = def.Build.OutputDir
	}

	if cfg.Build.LogLevel == "" {
		cfg.Build.LogLevel = def.Build.LogLevel
	} else if !isLogLevel(cfg.Build.LogLevel) {
		return nil, nil, fmt.Errorf("invalid log level `%s`: must be one of %s",
			cfg.Build.LogLevel,
			strings.Join(report.LogLevelNames, ", "),
		)
	}

	versionWarning, err := checkVersion(cfg.Version)
	if err != nil {
		return nil, nil, err
	}

	if versionWarning != "" {
		warnings = append(warnings, versionWarning)
	}

	return cfg, warnings, nil
}

// checkKeys returns a warning for every unknown key in the given table.
func checkKeys(tree *toml.Tree, table string) []string {
	var warnings []string

	for _, key := range tree.Keys() {
		if _, ok := knownKeys[table][key]; !ok {
			if table == "" {
				warnings = append(warnings, fmt.Sprintf("unknown config key `%s`", key))
			} else {
				warnings = append(warnings, fmt.Sprintf("unknown config key `%s.%s`", table, key))
			}

			continue
		}

		if sub, ok := tree.Get(key).(*toml.Tree); ok && table == "" {
			warnings = append(warnings, checkKeys(sub, key)...)
		}
	}

	return warnings
}

// checkVersion checks the version a configuration requires against the
// compiler version.  A configuration requiring a newer compiler produces a
// warning.
func checkVersion(version string) (string, error) {
	required := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(required) {
		return "", fmt.Errorf("invalid subc-version `%s`", version)
	}

	if semver.Compare(required, "v"+CompilerVersion) > 0 {
		return fmt.Sprintf("config requires subc %s but this is subc v%s", required, CompilerVersion), nil
	}

	return "", nil
}

func isLogLevel(name string) bool {
	for _, levelName := range report.LogLevelNames {
		if levelName == name {
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// Load loads the configuration file at the given path.
func Load(path string) (*Config, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open config file at `%s`: %w", path, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading config file at `%s`: %w", path, err)
	}

	return Decode(buff)
}

// Find returns the path of the configuration file next to a source file if
// one exists.
func Find(srcPath string) (string, bool) {
	path := filepath.Join(filepath.Dir(srcPath), FileName)

	if finfo, err := os.Stat(path); err == nil && !finfo.IsDir() {
		return path, true
	}

	return "", false
}
