package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RunConfig configures a behavior test run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// Gen configures the operation mix.
	Gen OpGenConfig
}

// DefaultRunConfig returns a balanced configuration for behavior tests.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxOps: 200,
		Gen:    DefaultOpGenConfig(),
	}
}

// RunBehavior executes the operations derived from seed against the model
// and the interpreter, and fails on the first divergence in outcome or in
// the resulting collection.
func RunBehavior(tb testing.TB, seed []byte, cfg RunConfig) {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("RunBehavior requires MaxOps > 0")
	}

	h := NewHarness(tb)
	gen := NewOpGenerator(seed, h.Model, &cfg.Gen)
	history := make([]string, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps && gen.HasMore(); opIndex++ {
		op := gen.NextOp()
		history = append(history, op.String())

		got := h.ApplyReal(op)
		modelErr := op.ApplyModel(h.Model)

		err := compareResults(op, modelErr, got)
		if err != nil {
			tb.Fatalf("%v\n%s", err, FormatOps(history))
		}

		if diff := cmp.Diff(h.Model.Records(), RecordsOf(h.Activities)); diff != "" {
			tb.Fatalf("collection mismatch after %s (-model +real):\n%s\n%s", op, diff, FormatOps(history))
		}
	}
}

func compareResults(op Op, modelErr error, got Result) error {
	switch {
	case modelErr == nil && got.Err != nil:
		return fmt.Errorf("model succeeded but interpreter failed: %s: %w", op, got.Err)
	case modelErr != nil && got.Err == nil:
		return fmt.Errorf("model failed but interpreter succeeded: %s: %w", op, modelErr)
	case modelErr != nil && !MatchesError(modelErr, got.Err):
		return fmt.Errorf("error bucket mismatch: %s: model %w, interpreter %v", op, modelErr, got.Err)
	}

	return nil
}
