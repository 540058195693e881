// Copyright ©2025 The lac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lac

import (
	"encoding/binary"
	"io"
	"math"
)

// Vector dump framing. The element payload is written verbatim as fixed
// width little-endian float64 values, so a dump is not portable to readers
// with a different element width.
const (
	dumpBegin = '['
	dumpEnd   = ']'
)

// BlockWrite writes the vector en bloc to w: the element count followed by
// the raw element buffer between begin and end tokens. The output is binary
// and meant to be read back with BlockRead on the write side's
// representation only.
func (v *Vector) BlockWrite(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(v.data))); err != nil {
		return err
	}
	if _, err := w.Write([]byte{dumpBegin}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.data); err != nil {
		return err
	}
	_, err := w.Write([]byte{dumpEnd})
	return err
}

// BlockRead replaces the contents of the vector with a dump previously
// written by BlockWrite, resizing as needed. Only the element count and the
// framing tokens are validated; they catch the bluntest attempts to read
// something that is not a vector dump, not more. A violation fails with
// ErrFormat.
func (v *Vector) BlockRead(r io.Reader) error {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}
	// Each element occupies eight bytes, so any count that could not have
	// been produced by BlockWrite is rejected before it reaches the
	// allocator.
	if n > math.MaxInt/8 {
		return ErrFormat
	}
	var tok [1]byte
	if _, err := io.ReadFull(r, tok[:]); err != nil {
		return err
	}
	if tok[0] != dumpBegin {
		return ErrFormat
	}
	v.Reinit(int(n), true)
	if err := binary.Read(r, binary.LittleEndian, v.data); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, tok[:]); err != nil {
		return err
	}
	if tok[0] != dumpEnd {
		return ErrFormat
	}
	return nil
}
