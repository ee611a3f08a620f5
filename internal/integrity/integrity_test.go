package integrity

import (
	"errors"
	"path/filepath"
	"testing"

	"leash/internal/policy"
	"leash/internal/tokenizer"
)

const fakebinDigest = "2ed8c325e96d81d8f66d1b1b1a7724755c885c7617c011d6ab8dd73375bfe29b"

func fakebinPath(t *testing.T) string {
	t.Helper()
	abs, err := filepath.Abs("testdata/fakebin")
	if err != nil {
		t.Fatalf("resolving testdata path: %v", err)
	}
	return abs
}

func TestVerify_NoIntegrityIsNoOp(t *testing.T) {
	stages := []tokenizer.Stage{{Argv: []string{"relative-name"}}}
	if err := Verify(stages, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerify_Match(t *testing.T) {
	stages := []tokenizer.Stage{{Argv: []string{fakebinPath(t), "arg"}}}
	if err := Verify(stages, []string{fakebinDigest}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerify_Mismatch(t *testing.T) {
	stages := []tokenizer.Stage{{Argv: []string{fakebinPath(t)}}}
	bogus := "00000000000000000000000000000000000000000000000000000000000000ab"
	err := Verify(stages, []string{bogus})
	if !errors.Is(err, policy.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestVerify_RelativeProgramRejected(t *testing.T) {
	stages := []tokenizer.Stage{{Argv: []string{"relative-name"}}}
	err := Verify(stages, []string{fakebinDigest})
	if !errors.Is(err, policy.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVerify_LengthMismatch(t *testing.T) {
	stages := []tokenizer.Stage{
		{Argv: []string{fakebinPath(t)}},
		{Argv: []string{fakebinPath(t)}},
	}
	err := Verify(stages, []string{fakebinDigest})
	if !errors.Is(err, policy.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}
