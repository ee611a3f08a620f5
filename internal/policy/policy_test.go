package policy

import (
	"errors"
	"testing"
)

func examplePolicy() Policy {
	return New([]AclEntry{
		{Name: "envg", CommandLine: "env | grep KORE", Env: []string{"KORE=are", "DORE=sore"}},
		{Name: "ls", CommandLine: "ls"},
		{Name: "safels", CommandLine: "ls", Integrity: []string{"deadbeef"}},
		{Name: "badlen", CommandLine: "env | grep KORE", Integrity: []string{"deadbeef"}},
	})
}

func TestIsBlank(t *testing.T) {
	if !New(nil).IsBlank() {
		t.Fatal("empty policy should be blank")
	}
	if examplePolicy().IsBlank() {
		t.Fatal("non-empty policy should not be blank")
	}
}

func TestResolveAlias_Hit(t *testing.T) {
	p := examplePolicy()
	cmd, env, err := p.ResolveAlias("envg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "env | grep KORE" {
		t.Fatalf("unexpected command line: %q", cmd)
	}
	want := []EnvPair{{Key: "KORE", Value: "are"}, {Key: "DORE", Value: "sore"}}
	if len(env) != len(want) {
		t.Fatalf("env length = %d, want %d", len(env), len(want))
	}
	for i, p := range want {
		if env[i] != p {
			t.Fatalf("env[%d] = %+v, want %+v", i, env[i], p)
		}
	}
}

func TestResolveAlias_Miss(t *testing.T) {
	p := examplePolicy()
	if _, _, err := p.ResolveAlias("nope"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestIntegrityFor_NoIntegrity(t *testing.T) {
	p := examplePolicy()
	got, err := p.IntegrityFor("ls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty integrity, got %v", got)
	}
}

func TestIntegrityFor_LengthMismatch(t *testing.T) {
	p := examplePolicy()
	if _, err := p.IntegrityFor("badlen"); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestIntegrityFor_UnknownAlias(t *testing.T) {
	p := examplePolicy()
	if _, err := p.IntegrityFor("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFirstMatchWins(t *testing.T) {
	p := New([]AclEntry{
		{Name: "dup", CommandLine: "first"},
		{Name: "dup", CommandLine: "second"},
	})
	cmd, _, err := p.ResolveAlias("dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "first" {
		t.Fatalf("expected first match to win, got %q", cmd)
	}
}

func TestDecodeDigest(t *testing.T) {
	hex64 := "00000000000000000000000000000000000000000000000000000000000000ab"
	if _, err := DecodeDigest(hex64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper := "00000000000000000000000000000000000000000000000000000000000000AB"
	lo, err := DecodeDigest(hex64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	up, err := DecodeDigest(upper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != up {
		t.Fatal("hex decoding should be case-insensitive")
	}
	if _, err := DecodeDigest("not-hex"); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData for malformed hex, got %v", err)
	}
	if _, err := DecodeDigest("ab"); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData for short digest, got %v", err)
	}
}

func TestEntriesReturnsAllEntries(t *testing.T) {
	p := examplePolicy()
	entries := p.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
}
