// Package hyrax computes Hyrax-style polynomial commitments to raw byte
// buffers: the data is packed into a matrix of BN254 scalars and each row is
// committed with a Pedersen vector commitment under a deterministically
// derived generator set. The commitment is public; the per-row blinding
// factors are secret and leave the package only through their serialized
// export.
package hyrax

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/panjf2000/ants/v2"

	"hyrax-pcs/pedersen"
	"hyrax-pcs/prof"
)

// Wire-format constants. Changing any of them invalidates every commitment
// issued so far, so they are fixed here rather than configurable.
const (
	// ElementSize is the number of data bytes packed into one scalar.
	// 31*8 = 248 bits, strictly below the 254-bit Fr modulus, so the
	// big-endian byte-to-scalar map is injective and never reduces.
	ElementSize = 31

	// DefaultRowLen is the matrix row length, in scalars, used by the
	// production entry point. One row holds DefaultRowLen*ElementSize =
	// 1984 bytes of data.
	DefaultRowLen = 64

	// SeedSize is the required blinding seed length in bytes.
	SeedSize = 32

	// PointSize is the serialized width of one commitment point.
	PointSize = bn254.SizeOfG1AffineCompressed

	// ScalarSize is the serialized width of one blinding factor.
	ScalarSize = fr.Bytes
)

// PublicString seeds the generator derivation for production commitments.
// It is part of the protocol: a commitment issued under one string can never
// be checked against generators derived from another.
const PublicString = "hyrax-pcs iris self-custody commitment generators v1"

var (
	// ErrEncoding is returned when a data chunk cannot be represented as a
	// canonical field element. With the fixed 31-byte element width this
	// indicates a misconfiguration, not bad input data.
	ErrEncoding = errors.New("data chunk not representable in the scalar field")
	// ErrInvalidSeed is returned when the blinding seed is not exactly
	// SeedSize bytes.
	ErrInvalidSeed = errors.New("blinding seed must be exactly 32 bytes")
	// ErrDeserialize is returned when a serialized commitment or blinding
	// factor stream has a malformed length or an invalid element encoding.
	ErrDeserialize = errors.New("malformed serialized input")
)

// CommitmentOutput is the structured result of a commitment computation. The
// blinding factors are secret; callers must Zeroize them once exported.
type CommitmentOutput struct {
	Commitment      []bn254.G1Affine
	BlindingFactors BlindingFactors
}

// SerializedOutput carries the two wire-format byte strings. Commitment is
// public and may be shipped to a verifier; BlindingFactors must reach the
// holder's self-custody channel and nothing else.
type SerializedOutput struct {
	Commitment      []byte
	BlindingFactors []byte
}

// ComputeCommitments commits to data under the given committer, deriving one
// blinding factor per matrix row from seed. The committer's generator count
// fixes the row length.
func ComputeCommitments(data []byte, c *pedersen.Committer, seed []byte) (*CommitmentOutput, error) {
	matrix, err := EncodeMatrix(data, len(c.Generators))
	if err != nil {
		return nil, err
	}
	blindings, err := GenerateBlindingFactors(seed, len(matrix))
	if err != nil {
		return nil, err
	}
	commitment, err := commitRows(matrix, c, blindings)
	if err != nil {
		return nil, err
	}
	return &CommitmentOutput{Commitment: commitment, BlindingFactors: blindings}, nil
}

// ComputeCommitmentsBinaryOutputs is the production entry point: it commits
// to data under the process-wide generator set for PublicString and returns
// the two serialized streams. The in-memory blinding factors are zeroized
// before returning; the serialized copy is the only one that survives.
func ComputeCommitmentsBinaryOutputs(data []byte, seed []byte) (*SerializedOutput, error) {
	c, err := pedersen.Shared(DefaultRowLen, PublicString)
	if err != nil {
		return nil, err
	}
	out, err := ComputeCommitments(data, c, seed)
	if err != nil {
		return nil, err
	}
	serialized := &SerializedOutput{
		Commitment:      SerializeCommitment(out.Commitment),
		BlindingFactors: SerializeBlindingFactors(out.BlindingFactors),
	}
	out.BlindingFactors.Zeroize()
	return serialized, nil
}

// commitRows computes one Pedersen commitment per matrix row. Rows are
// independent, so they fan out on a worker pool sized to the machine; the
// generator set and the blinding factors are read-only during the fan-out.
func commitRows(matrix Matrix, c *pedersen.Committer, blindings BlindingFactors) ([]bn254.G1Affine, error) {
	defer prof.Track(time.Now(), "Hyrax.CommitRows")

	if len(blindings) != len(matrix) {
		return nil, fmt.Errorf("hyrax: %d blinding factors for %d rows: %w",
			len(blindings), len(matrix), pedersen.ErrDimensionMismatch)
	}
	commitment := make([]bn254.G1Affine, len(matrix))
	if len(matrix) == 0 {
		return commitment, nil
	}

	pool, err := ants.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, fmt.Errorf("hyrax: worker pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(matrix))
	var wg sync.WaitGroup
	for i := range matrix {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			commitment[i], errs[i] = c.VectorCommit(matrix[i], blindings[i])
		}
		if err := pool.Submit(task); err != nil {
			// Submission only fails on a released pool; run inline so the
			// row is never silently skipped.
			task()
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return commitment, nil
}
