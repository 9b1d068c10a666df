package hyrax

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// The wire format is a flat concatenation of fixed-width canonical element
// encodings with no header: row count = len(stream) / element width, and the
// commitment and blinding-factor streams of one computation always agree on
// it. Points use the gnark compressed G1 encoding (32 bytes, flag bits in
// the two most significant bits); scalars are 32 big-endian bytes.

// SerializeCommitment encodes the per-row commitment points.
func SerializeCommitment(points []bn254.G1Affine) []byte {
	out := make([]byte, 0, len(points)*PointSize)
	for i := range points {
		buf := points[i].Bytes()
		out = append(out, buf[:]...)
	}
	return out
}

// SerializeBlindingFactors encodes the per-row blinding scalars.
func SerializeBlindingFactors(bf BlindingFactors) []byte {
	out := make([]byte, 0, len(bf)*ScalarSize)
	for i := range bf {
		buf := bf[i].Bytes()
		out = append(out, buf[:]...)
	}
	return out
}

// DeserializeCommitment is the exact inverse of SerializeCommitment. It
// fails on a length that is not a multiple of the point width and on any
// encoding that is not a valid curve point.
func DeserializeCommitment(buf []byte) ([]bn254.G1Affine, error) {
	if len(buf)%PointSize != 0 {
		return nil, fmt.Errorf("hyrax: commitment stream of %d bytes is not a multiple of %d: %w",
			len(buf), PointSize, ErrDeserialize)
	}
	points := make([]bn254.G1Affine, len(buf)/PointSize)
	for i := range points {
		chunk := buf[i*PointSize : (i+1)*PointSize]
		if _, err := points[i].SetBytes(chunk); err != nil {
			return nil, fmt.Errorf("hyrax: commitment point %d: %w: %v", i, ErrDeserialize, err)
		}
	}
	return points, nil
}

// DeserializeBlindingFactors is the exact inverse of
// SerializeBlindingFactors. It fails on a length that is not a multiple of
// the scalar width and on any scalar not strictly below the field modulus.
func DeserializeBlindingFactors(buf []byte) (BlindingFactors, error) {
	if len(buf)%ScalarSize != 0 {
		return nil, fmt.Errorf("hyrax: blinding factor stream of %d bytes is not a multiple of %d: %w",
			len(buf), ScalarSize, ErrDeserialize)
	}
	factors := make(BlindingFactors, len(buf)/ScalarSize)
	for i := range factors {
		chunk := buf[i*ScalarSize : (i+1)*ScalarSize]
		if err := factors[i].SetBytesCanonical(chunk); err != nil {
			return nil, fmt.Errorf("hyrax: blinding factor %d: %w: %v", i, ErrDeserialize, err)
		}
	}
	return factors, nil
}
