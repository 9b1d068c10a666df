package pedersen

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"golang.org/x/crypto/sha3"

	"hyrax-pcs/prof"
)

// Each candidate draw consumes a fixed-width block of XOF output: 64 bytes
// reduced big-endian into the x-coordinate plus one byte selecting the parity
// of y. Fixed-width blocks keep the stream position independent of how many
// candidates were rejected before the current one.
const (
	xCandidateBytes = 64
	candidateBytes  = xCandidateBytes + 1
)

// maxDrawsPerPoint bounds the rejection loop. Roughly half of all field
// elements are valid x-coordinates, so exhausting the bound means the XOF or
// the curve arithmetic is broken, not bad luck.
const maxDrawsPerPoint = 128

// sampleGenerators derives count curve points from publicString via SHAKE256.
// Candidates whose x-coordinate does not lie on the curve are skipped and the
// next block is drawn, so the stream offset of each accepted point depends
// only on the public string.
func sampleGenerators(publicString string, count int) ([]bn254.G1Affine, error) {
	defer prof.Track(time.Now(), "Pedersen.SampleGenerators")

	xof := sha3.NewShake256()
	if _, err := xof.Write([]byte(publicString)); err != nil {
		return nil, fmt.Errorf("pedersen: %w: absorb public string: %v", ErrGeneration, err)
	}

	points := make([]bn254.G1Affine, 0, count)
	budget := count * maxDrawsPerPoint
	var block [candidateBytes]byte
	for draws := 0; len(points) < count; draws++ {
		if draws >= budget {
			panic("pedersen: generator sampling exhausted its draw budget")
		}
		if _, err := xof.Read(block[:]); err != nil {
			return nil, fmt.Errorf("pedersen: %w: draw candidate block: %v", ErrGeneration, err)
		}
		pt, ok := liftX(block[:xCandidateBytes], block[xCandidateBytes])
		if !ok {
			continue
		}
		points = append(points, pt)
	}
	return points, nil
}

// liftX reduces xBytes big-endian into the base field and lifts the result to
// the curve point with y² = x³ + 3 whose y parity equals parity&1. ok is
// false when x³ + 3 is a non-residue and the candidate must be redrawn.
//
// BN254 has cofactor one, so every lifted point already lies in the
// prime-order subgroup.
func liftX(xBytes []byte, parity byte) (bn254.G1Affine, bool) {
	var x fp.Element
	x.SetBytes(xBytes)

	var ySq, b fp.Element
	ySq.Square(&x)
	ySq.Mul(&ySq, &x)
	b.SetUint64(3)
	ySq.Add(&ySq, &b)

	var y fp.Element
	if y.Sqrt(&ySq) == nil {
		return bn254.G1Affine{}, false
	}
	// Parity is defined on the canonical (non-Montgomery) big-endian
	// encoding; the limb representation must never leak into the protocol.
	yBytes := y.Bytes()
	if yBytes[len(yBytes)-1]&1 != parity&1 {
		y.Neg(&y)
	}
	return bn254.G1Affine{X: x, Y: y}, true
}
