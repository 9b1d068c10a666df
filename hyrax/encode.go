package hyrax

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"hyrax-pcs/prof"
)

// Matrix is the scalar matrix committed row by row. Every row has the same
// length; the final row of an encoded buffer is zero-padded on the right.
type Matrix [][]fr.Element

// RowCount returns the number of matrix rows an input of dataLen bytes
// occupies at the given row length: ceil(dataLen / (rowLen*ElementSize)).
func RowCount(dataLen, rowLen int) int {
	capacity := rowLen * ElementSize
	return (dataLen + capacity - 1) / capacity
}

// EncodeMatrix packs data into a matrix of rowLen scalars per row. Each
// scalar is the big-endian value of the next ElementSize-byte chunk of data;
// the tail of the final row is zero-padded, so a short input encodes exactly
// like the same input extended with zero bytes to the full row capacity.
func EncodeMatrix(data []byte, rowLen int) (Matrix, error) {
	defer prof.Track(time.Now(), "Hyrax.EncodeMatrix")

	if rowLen < 1 {
		return nil, fmt.Errorf("hyrax: row length %d: %w", rowLen, ErrEncoding)
	}
	rows := RowCount(len(data), rowLen)
	matrix := make(Matrix, rows)
	var chunk [fr.Bytes]byte
	for i := range matrix {
		row := make([]fr.Element, rowLen)
		for j := range row {
			offset := (i*rowLen + j) * ElementSize
			if offset >= len(data) {
				// Zero value already; the rest of the row is padding.
				continue
			}
			// Left-pad into a full scalar-width buffer so the chunk keeps its
			// big-endian value; right-pad the final partial chunk with zeros.
			for k := range chunk {
				chunk[k] = 0
			}
			copy(chunk[fr.Bytes-ElementSize:], data[offset:min(offset+ElementSize, len(data))])
			if err := row[j].SetBytesCanonical(chunk[:]); err != nil {
				return nil, fmt.Errorf("hyrax: chunk at byte %d: %w: %v", offset, ErrEncoding, err)
			}
		}
		matrix[i] = row
	}
	return matrix, nil
}
