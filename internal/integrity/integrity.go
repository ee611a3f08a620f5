// Package integrity verifies a resolved pipeline's stages against the
// per-stage SHA-256 digests recorded for its alias before the pipeline is
// allowed to run.
package integrity

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"leash/internal/digest"
	"leash/internal/policy"
	"leash/internal/tokenizer"
)

// Verify checks stages against want, an ordered vector of expected hex
// digests (one per stage) as returned by policy.Policy.IntegrityFor. A nil
// or empty want is treated as "no integrity requirement" and Verify
// succeeds trivially.
//
// When want is non-empty, every stage's program must be an absolute path:
// a bare or relative program name cannot be resolved to a single file to
// hash, so it is rejected rather than guessed at via PATH. The digest of
// each stage's program file is computed and compared, case-insensitively,
// against the corresponding entry in want.
func Verify(stages []tokenizer.Stage, want []string) error {
	if len(want) == 0 {
		return nil
	}
	if len(want) != len(stages) {
		return fmt.Errorf("%w: %d stage(s) but %d integrity digest(s)", policy.ErrInvalidData, len(stages), len(want))
	}

	for i, stage := range stages {
		prog := stage.Program()
		if !filepath.IsAbs(prog) {
			return fmt.Errorf("%w: stage %d: %q must be an absolute path when integrity is enforced", policy.ErrInvalidInput, i, prog)
		}

		wantSum, err := policy.DecodeDigest(want[i])
		if err != nil {
			return err
		}

		gotSum, err := digest.SHA256(prog)
		if err != nil {
			return err
		}

		if gotSum != wantSum {
			return fmt.Errorf("%w: stage %d: %s digest mismatch: got %s, want %s",
				policy.ErrInvalidData, i, prog, hex.EncodeToString(gotSum[:]), hex.EncodeToString(wantSum[:]))
		}
	}
	return nil
}
