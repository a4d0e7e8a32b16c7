// Unit tests for the configuration primitives (builderConfig and
// BuilderOption): application order, overrides and nil handling.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that nil schemes are ignored (no-op).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. Default configuration: IDFn should be DefaultIDFn
	cfgDefault := newBuilderConfig()
	// call idFn on a sample index
	if got, _ := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got, _ := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithIDScheme(ExcelColumnIDFn) should override to ExcelColumnIDFn
	cfgExcel := newBuilderConfig(WithIDScheme(ExcelColumnIDFn))
	if got, _ := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithIDScheme(ExcelColumnIDFn): expected \"AB\", got %q", got)
	}

	// 4. WithPrefixedIDs should override to SymbolNumberIDFn
	cfgPrefixed := newBuilderConfig(WithPrefixedIDs("v"))
	if got, _ := cfgPrefixed.idFn(35); got != "v35" {
		t.Errorf("WithPrefixedIDs: expected \"v35\", got %q", got)
	}

	// 5. A later scheme option overrides an earlier one
	cfgReset := newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn))
	if got, _ := cfgReset.idFn(3); got != "3" {
		t.Errorf("WithIDScheme(DefaultIDFn) override: expected \"3\", got %q", got)
	}

	// 6. Nil IDFn in WithIDScheme should be ignored
	cfgNil := newBuilderConfig(WithIDScheme(nil))
	if got, _ := cfgNil.idFn(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and ignoring nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) should be no-op
	cfgRandNil := newBuilderConfig(WithRand(nil))
	if cfgRandNil.rng != nil {
		t.Errorf("WithRand(nil): expected nil, got %v", cfgRandNil.rng)
	}

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestPartitionPrefixOptions verifies prefix overrides and the empty-string
// fallback to defaults.
func TestPartitionPrefixOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.leftPrefix != "L" || cfg.rightPrefix != "R" {
		t.Errorf("default prefixes: expected L/R, got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}

	cfg = newBuilderConfig(WithPartitionPrefix("U", "W"))
	if cfg.leftPrefix != "U" || cfg.rightPrefix != "W" {
		t.Errorf("WithPartitionPrefix: expected U/W, got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}

	cfg = newBuilderConfig(WithPartitionPrefix("", "W"))
	if cfg.leftPrefix != "L" || cfg.rightPrefix != "W" {
		t.Errorf("empty left prefix: expected L/W, got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
}
