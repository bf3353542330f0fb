// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/unit"
)

// Hasher accumulates the layout affecting state of a widget tree.
// Hosts compare sums between frames to decide whether to lay out
// again.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Reset clears the hasher.
func (h *Hasher) Reset() {
	h.d.Reset()
}

// Sum64 returns the current hash.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// String writes s, length prefixed so that consecutive strings
// cannot collide.
func (h *Hasher) String(s string) {
	h.Int(int64(len(s)))
	h.d.WriteString(s)
}

// Int writes v.
func (h *Hasher) Int(v int64) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
	h.d.Write(h.buf[:])
}

// Float writes v.
func (h *Hasher) Float(v float32) {
	binary.LittleEndian.PutUint32(h.buf[:4], math.Float32bits(v))
	h.d.Write(h.buf[:4])
}

// Bool writes v.
func (h *Hasher) Bool(v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	h.buf[0] = b
	h.d.Write(h.buf[:1])
}

// Length writes l.
func (h *Hasher) Length(l unit.Length) {
	h.String(l.String())
}

// Size writes s.
func (h *Hasher) Size(s f32.Size) {
	h.Float(s.Width)
	h.Float(s.Height)
}

// Font writes f.
func (h *Hasher) Font(f font.Font) {
	h.String(string(f.Typeface))
	h.String(string(f.Variant))
	h.Int(int64(f.Style))
	h.Int(int64(f.Weight))
}

// Sum returns the hash of a widget tree.
func Sum[M any](w Widget[M]) uint64 {
	h := NewHasher()
	w.Hash(h)
	return h.Sum64()
}
