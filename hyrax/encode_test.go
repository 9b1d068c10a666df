package hyrax

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestRowCount(t *testing.T) {
	cases := []struct {
		dataLen, rowLen, want int
	}{
		{0, 64, 0},
		{1, 64, 1},
		{64 * ElementSize, 64, 1},
		{64*ElementSize + 1, 64, 2},
		{1 << 17, 64, 67},
		{ElementSize, 1, 1},
		{ElementSize + 1, 1, 2},
	}
	for _, c := range cases {
		if got := RowCount(c.dataLen, c.rowLen); got != c.want {
			t.Fatalf("RowCount(%d, %d) = %d, want %d", c.dataLen, c.rowLen, got, c.want)
		}
	}
}

func TestEncodeMatrixRejectsBadRowLen(t *testing.T) {
	if _, err := EncodeMatrix([]byte{1}, 0); !errors.Is(err, ErrEncoding) {
		t.Fatalf("rowLen 0: got %v, want ErrEncoding", err)
	}
	if _, err := EncodeMatrix([]byte{1}, -4); !errors.Is(err, ErrEncoding) {
		t.Fatalf("negative rowLen: got %v, want ErrEncoding", err)
	}
}

func TestEncodeMatrixEmptyInput(t *testing.T) {
	m, err := EncodeMatrix(nil, 64)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("empty input produced %d rows, want 0", len(m))
	}
}

func TestEncodeMatrixBigEndianPacking(t *testing.T) {
	data := make([]byte, ElementSize)
	data[ElementSize-1] = 0x07 // lowest-order byte of the chunk

	m, err := EncodeMatrix(data, 4)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(m) != 1 || len(m[0]) != 4 {
		t.Fatalf("got %dx%d matrix, want 1x4", len(m), len(m[0]))
	}
	var want fr.Element
	want.SetUint64(7)
	if !m[0][0].Equal(&want) {
		t.Fatalf("big-endian chunk value mismatch: got %s, want 7", m[0][0].String())
	}
	var zero fr.Element
	for j := 1; j < 4; j++ {
		if !m[0][j].Equal(&zero) {
			t.Fatalf("padding element %d is nonzero", j)
		}
	}
}

func TestEncodeMatrixInjectiveOnChunks(t *testing.T) {
	a := make([]byte, ElementSize)
	b := make([]byte, ElementSize)
	a[0] = 0x01 // differs only in the highest-order byte
	ma, err := EncodeMatrix(a, 1)
	if err != nil {
		t.Fatalf("encode a: %v", err)
	}
	mb, err := EncodeMatrix(b, 1)
	if err != nil {
		t.Fatalf("encode b: %v", err)
	}
	if ma[0][0].Equal(&mb[0][0]) {
		t.Fatalf("distinct chunks mapped to the same field element")
	}
}

func TestEncodeMatrixZeroPadsTail(t *testing.T) {
	const rowLen = 4
	short := []byte{0xAB}
	padded := make([]byte, rowLen*ElementSize)
	padded[0] = 0xAB

	mShort, err := EncodeMatrix(short, rowLen)
	if err != nil {
		t.Fatalf("encode short: %v", err)
	}
	mPadded, err := EncodeMatrix(padded, rowLen)
	if err != nil {
		t.Fatalf("encode padded: %v", err)
	}
	if len(mShort) != 1 || len(mPadded) != 1 {
		t.Fatalf("row counts: short %d, padded %d, want 1 and 1", len(mShort), len(mPadded))
	}
	for j := 0; j < rowLen; j++ {
		if !mShort[0][j].Equal(&mPadded[0][j]) {
			t.Fatalf("element %d: short input and zero-padded input encode differently", j)
		}
	}
}

func TestEncodeMatrixPartialFinalRow(t *testing.T) {
	const rowLen = 2
	// Two full rows plus one trailing byte: three rows, last mostly padding.
	data := make([]byte, 2*rowLen*ElementSize+1)
	for i := range data {
		data[i] = byte(i + 1)
	}
	m, err := EncodeMatrix(data, rowLen)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("got %d rows, want 3", len(m))
	}
	var zero fr.Element
	if m[2][0].Equal(&zero) {
		t.Fatalf("first element of the partial row lost its data byte")
	}
	if !m[2][1].Equal(&zero) {
		t.Fatalf("padding element of the partial row is nonzero")
	}
}
