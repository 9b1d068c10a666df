package hyrax

import (
	"bytes"
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestGenerateBlindingFactorsSeedLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		if _, err := GenerateBlindingFactors(make([]byte, n), 4); !errors.Is(err, ErrInvalidSeed) {
			t.Fatalf("seed of %d bytes: got %v, want ErrInvalidSeed", n, err)
		}
	}
	if _, err := GenerateBlindingFactors(nil, 4); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("nil seed: got %v, want ErrInvalidSeed", err)
	}
}

func TestGenerateBlindingFactorsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, SeedSize)
	a, err := GenerateBlindingFactors(seed, 16)
	if err != nil {
		t.Fatalf("first expansion: %v", err)
	}
	b, err := GenerateBlindingFactors(seed, 16)
	if err != nil {
		t.Fatalf("second expansion: %v", err)
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("factor %d differs between expansions of the same seed", i)
		}
	}

	// A shorter expansion of the same seed is a prefix of the longer one.
	short, err := GenerateBlindingFactors(seed, 4)
	if err != nil {
		t.Fatalf("short expansion: %v", err)
	}
	for i := range short {
		if !short[i].Equal(&a[i]) {
			t.Fatalf("factor %d of the short expansion differs from the long one", i)
		}
	}
}

func TestGenerateBlindingFactorsSeedDependence(t *testing.T) {
	a, err := GenerateBlindingFactors(make([]byte, SeedSize), 8)
	if err != nil {
		t.Fatalf("zero seed: %v", err)
	}
	seed := make([]byte, SeedSize)
	seed[31] = 1
	b, err := GenerateBlindingFactors(seed, 8)
	if err != nil {
		t.Fatalf("one-bit seed: %v", err)
	}
	if a[0].Equal(&b[0]) {
		t.Fatalf("distinct seeds produced the same first blinding factor")
	}
}

func TestGenerateBlindingFactorsEmpty(t *testing.T) {
	bf, err := GenerateBlindingFactors(make([]byte, SeedSize), 0)
	if err != nil {
		t.Fatalf("zero rows: %v", err)
	}
	if len(bf) != 0 {
		t.Fatalf("zero rows produced %d factors", len(bf))
	}
}

func TestZeroize(t *testing.T) {
	bf, err := GenerateBlindingFactors(bytes.Repeat([]byte{0xc3}, SeedSize), 8)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	bf.Zeroize()
	var zero fr.Element
	for i := range bf {
		if !bf[i].Equal(&zero) {
			t.Fatalf("factor %d survived zeroization", i)
		}
	}
}
