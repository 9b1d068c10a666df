package hyrax

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/chacha20"

	"hyrax-pcs/prof"
)

// BlindingFactors holds one secret scalar per matrix row. The sequence is
// single-owner until handed to the caller; Zeroize it as soon as the
// serialized export exists.
type BlindingFactors []fr.Element

// GenerateBlindingFactors expands a 32-byte seed into rowCount scalars. The
// CSPRNG is the ChaCha20 keystream keyed by the seed with an all-zero nonce
// and counter starting at zero; scalars are drawn by rejection sampling so
// the output is uniform over the field. The expansion is deterministic in
// (seed, rowCount) — the seed itself must be fresh single-use entropy.
func GenerateBlindingFactors(seed []byte, rowCount int) (BlindingFactors, error) {
	defer prof.Track(time.Now(), "Hyrax.GenerateBlindingFactors")

	if len(seed) != SeedSize {
		return nil, fmt.Errorf("hyrax: seed length %d: %w", len(seed), ErrInvalidSeed)
	}
	if rowCount < 0 {
		panic("hyrax: negative row count")
	}

	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed, nonce[:])
	if err != nil {
		return nil, fmt.Errorf("hyrax: blinding stream: %w", err)
	}

	factors := make(BlindingFactors, rowCount)
	var block [fr.Bytes]byte
	for i := range factors {
		// Clear the top two bits so candidates stay below 2^254, then accept
		// only canonical values. Acceptance probability is about 0.76 per
		// draw; rejected draws advance the stream like accepted ones.
		for {
			for k := range block {
				block[k] = 0
			}
			stream.XORKeyStream(block[:], block[:])
			block[0] &= 0x3f
			if err := factors[i].SetBytesCanonical(block[:]); err == nil {
				break
			}
		}
	}
	return factors, nil
}

// Zeroize overwrites every scalar with zero. Callers holding the structured
// output must call it once the serialized form has been exported.
func (bf BlindingFactors) Zeroize() {
	for i := range bf {
		bf[i].SetZero()
	}
}
