// Package pedersen implements Pedersen vector commitments over the BN254
// curve. The generator set is derived deterministically from a public string,
// so that any two parties agreeing on the string agree on the commitment key
// with no trusted setup.
package pedersen

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrGeneration is returned when the generator derivation primitives fail.
	ErrGeneration = errors.New("generator sampling failed")
	// ErrDimensionMismatch is returned when a vector's length does not match
	// the committer's generator count.
	ErrDimensionMismatch = errors.New("vector/generator dimension mismatch")
)

// Committer holds a derived generator set. It is immutable after New and safe
// for concurrent use.
type Committer struct {
	// Generators are the message generators, one per vector slot.
	Generators []bn254.G1Affine
	// BlindingGenerator is the generator scaled by the blinding factor. It is
	// the last point of the sampling stream, after the message generators.
	BlindingGenerator bn254.G1Affine
}

// New derives numGenerators message generators plus one blinding generator
// from publicString. The derivation is deterministic: the same inputs yield
// the same committer on every platform and in every process.
func New(numGenerators int, publicString string) (*Committer, error) {
	if numGenerators <= 0 {
		return nil, fmt.Errorf("pedersen: generator count must be positive, got %d", numGenerators)
	}
	points, err := sampleGenerators(publicString, numGenerators+1)
	if err != nil {
		return nil, err
	}
	return &Committer{
		Generators:        points[:numGenerators],
		BlindingGenerator: points[numGenerators],
	}, nil
}

// VectorCommit commits to row under the given blinding factor:
//
//	C = row[0]*G_0 + ... + row[n-1]*G_{n-1} + blinding*H
//
// computed as a single multi-scalar multiplication. The row length must equal
// the generator count exactly; shorter rows are not padded here, the caller
// encodes full rows.
func (c *Committer) VectorCommit(row []fr.Element, blinding fr.Element) (bn254.G1Affine, error) {
	if len(row) != len(c.Generators) {
		return bn254.G1Affine{}, fmt.Errorf("pedersen: row has %d elements for %d generators: %w",
			len(row), len(c.Generators), ErrDimensionMismatch)
	}
	points := make([]bn254.G1Affine, 0, len(row)+1)
	points = append(points, c.Generators...)
	points = append(points, c.BlindingGenerator)
	scalars := make([]fr.Element, 0, len(row)+1)
	scalars = append(scalars, row...)
	scalars = append(scalars, blinding)

	// Callers parallelize across rows, so each MSM stays on a single task.
	var res bn254.G1Affine
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: 1}); err != nil {
		return bn254.G1Affine{}, fmt.Errorf("pedersen: multi-scalar multiplication: %w", err)
	}
	return res, nil
}
