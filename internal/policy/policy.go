package policy

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AclEntry is one allow-list rule: an alias name, the canonical pipeline
// text it expands to, an env overlay, and a per-stage integrity vector.
type AclEntry struct {
	Name        string   `toml:"name"`
	CommandLine string   `toml:"command_line"`
	Env         []string `toml:"env"`
	Integrity   []string `toml:"integrity"`
}

// EnvPairs splits Env's "KEY=VALUE" strings at the first '=', preserving
// declared order so later duplicate keys can overwrite earlier ones when
// applied to a process environment.
func (e AclEntry) EnvPairs() []EnvPair {
	pairs := make([]EnvPair, 0, len(e.Env))
	for _, kv := range e.Env {
		k, v, _ := strings.Cut(kv, "=")
		pairs = append(pairs, EnvPair{Key: k, Value: v})
	}
	return pairs
}

// EnvPair is one KEY=VALUE entry from an AclEntry's env overlay.
type EnvPair struct {
	Key   string
	Value string
}

// StageCount returns the number of '|'-separated stages in CommandLine.
func (e AclEntry) StageCount() int {
	return len(strings.Split(e.CommandLine, "|"))
}

// Policy is an ordered, immutable sequence of AclEntry values loaded once
// at startup. Lookup is linear by name; the first match wins.
type Policy struct {
	entries []AclEntry
}

// New builds a Policy from an ordered slice of entries. Duplicate names
// are kept (first occurrence wins on lookup, per spec).
func New(entries []AclEntry) Policy {
	return Policy{entries: entries}
}

// IsBlank reports whether the policy has zero entries.
func (p Policy) IsBlank() bool {
	return len(p.entries) == 0
}

// Entries returns a read-only view of the policy's entries, in declared
// order. Used for debug diagnostics; callers must not mutate the result's
// backing slices' referents.
func (p Policy) Entries() []AclEntry {
	return p.entries
}

// find returns the first entry whose Name matches alias.
func (p Policy) find(alias string) (AclEntry, bool) {
	for _, e := range p.entries {
		if e.Name == alias {
			return e, true
		}
	}
	return AclEntry{}, false
}

// ResolveAlias scans entries in order and returns the matching entry's
// canonical command line and parsed env overlay. Fails with
// ErrPermissionDenied when the alias is absent from a non-blank policy.
func (p Policy) ResolveAlias(alias string) (commandLine string, env []EnvPair, err error) {
	e, ok := p.find(alias)
	if !ok {
		return "", nil, fmt.Errorf("%w: alias %q not in allow-list", ErrPermissionDenied, alias)
	}
	return e.CommandLine, e.EnvPairs(), nil
}

// IntegrityFor returns the expected per-stage digests (the hex strings as
// stored; they are not decoded or checked as hex here, see DecodeDigest) for
// alias. An entry with an empty Integrity vector returns a
// nil slice and no error. Fails with ErrInvalidData when the vector is
// non-empty but its length does not match the alias's stage count, and
// with ErrInvalidInput when the alias is absent.
func (p Policy) IntegrityFor(alias string) ([]string, error) {
	e, ok := p.find(alias)
	if !ok {
		return nil, fmt.Errorf("%w: alias %q not in allow-list", ErrInvalidInput, alias)
	}
	if len(e.Integrity) == 0 {
		return nil, nil
	}
	if want := e.StageCount(); len(e.Integrity) != want {
		return nil, fmt.Errorf("%w: alias %q: pipeline has %d stage(s) but integrity vector has %d",
			ErrInvalidData, alias, want, len(e.Integrity))
	}
	return e.Integrity, nil
}

// DecodeDigest canonicalizes a hex SHA-256 digest string (accepting either
// case) and decodes it to raw bytes. Malformed hex or a digest that isn't
// exactly 32 bytes is an ErrInvalidData configuration error.
func DecodeDigest(hexDigest string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(strings.ToLower(hexDigest))
	if err != nil {
		return out, fmt.Errorf("%w: malformed hex digest %q: %w", ErrInvalidData, hexDigest, err)
	}
	if len(raw) != len(out) {
		return out, fmt.Errorf("%w: digest %q is %d bytes, want %d", ErrInvalidData, hexDigest, len(raw), len(out))
	}
	copy(out[:], raw)
	return out, nil
}
