// Package config locates and loads the leash runtime configuration: the
// allow-list of aliases a user is permitted to invoke.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"leash/internal/policy"
)

// EnvConfPath names the environment variable that, when set, overrides the
// default config file location.
const EnvConfPath = "LEASH_CONF"

// rcFileName is the config file name looked for under $HOME when
// EnvConfPath is unset.
const rcFileName = ".leashrc"

// file is the on-disk TOML shape: a flat list of allow-list entries.
type file struct {
	Whitelist []policy.AclEntry `toml:"whitelist"`
}

// ResolvePath returns the config file path leash would load: $LEASH_CONF if
// set, otherwise $HOME/.leashrc.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvConfPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: determining home directory: %w", policy.ErrIO, err)
	}
	return filepath.Join(home, rcFileName), nil
}

// Load resolves and decodes the config file into a policy.Policy. A missing
// file is not an error: it yields a blank policy, so leash runs with an
// empty allow-list rather than refusing to start. A present-but-malformed
// file is a fatal ParseError — leash must not start with a config it can't
// fully trust.
func Load() (policy.Policy, error) {
	path, err := ResolvePath()
	if err != nil {
		return policy.Policy{}, err
	}
	return LoadFromPath(path)
}

// LoadFromPath decodes the TOML config file at path. A missing file yields
// a blank Policy and a nil error.
func LoadFromPath(path string) (policy.Policy, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return policy.New(nil), nil
	}

	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return policy.Policy{}, fmt.Errorf("%w: decoding %s: %w", policy.ErrParse, path, err)
	}
	return policy.New(f.Whitelist), nil
}
