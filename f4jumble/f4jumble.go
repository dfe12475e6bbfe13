// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package f4jumble implements the F4Jumble unkeyed permutation used to encode
Zcash unified addresses (ZIP 316).

F4Jumble is a four round Feistel network over a message M split into a left
part a of length l_L = min(64, floor(l_M / 2)) and a right part b holding the
remainder:

	x = b XOR G(0, a)
	y = a XOR H(0, x)
	d = x XOR G(1, y)
	c = y XOR H(1, d)

H is BLAKE2b with an l_L byte digest and G is a counter mode expansion of
BLAKE2b-512, both personalized.  Changing any bit of the input changes the
whole output, which prevents a partially matching address from being
generated cheaply.
*/
package f4jumble

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dchest/blake2b"
)

const (
	// MinMessageLen is the shortest message accepted.  ZIP 316 sets the
	// floor at 48 bytes, which every standard unified address exceeds.
	// The bound here is lowered to 38 bytes, the raw length of a
	// container holding a single 20 byte receiver, so that transparent
	// only metadata containers can still be jumbled.  Messages of 48
	// bytes or more are processed exactly as ZIP 316 specifies.
	MinMessageLen = 38

	// MaxMessageLen is the longest message accepted: l_L plus 2^16 full
	// BLAKE2b-512 output blocks.
	MaxMessageLen = 4194368

	// hashLen is the BLAKE2b-512 output size.
	hashLen = 64
)

var (
	personH = []byte("UA_F4Jumble_H")
	personG = []byte("UA_F4Jumble_G")
)

// ErrInvalidLength is returned when the message length is outside of
// [MinMessageLen, MaxMessageLen].
var ErrInvalidLength = errors.New("f4jumble: invalid message length")

// hashH computes H_i(u), truncated to outLen bytes.
func hashH(i byte, u []byte, outLen int) []byte {
	person := make([]byte, 0, 16)
	person = append(person, personH...)
	person = append(person, i, 0, 0)

	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(outLen),
		Person: person,
	})
	if err != nil {
		// The digest size is at most 64 and the personalization is
		// exactly 16 bytes, so configuration cannot fail.
		panic(fmt.Sprintf("f4jumble: blake2b config: %v", err))
	}
	h.Write(u)
	return h.Sum(nil)
}

// hashG computes G_i(u), the first outLen bytes of the concatenation of
// BLAKE2b-512 digests personalized with the block counter.
func hashG(i byte, u []byte, outLen int) []byte {
	out := make([]byte, 0, outLen+hashLen)
	person := make([]byte, 16)
	copy(person, personG)
	person[13] = i

	for j := 0; len(out) < outLen; j++ {
		binary.LittleEndian.PutUint16(person[14:], uint16(j))
		h, err := blake2b.New(&blake2b.Config{
			Size:   hashLen,
			Person: person,
		})
		if err != nil {
			panic(fmt.Sprintf("f4jumble: blake2b config: %v", err))
		}
		h.Write(u)
		out = h.Sum(out)
	}
	return out[:outLen]
}

// xorInto sets dst[k] ^= src[k] for every index of dst.
func xorInto(dst, src []byte) {
	for k := range dst {
		dst[k] ^= src[k]
	}
}

// split validates the message length and returns the left length.
func split(msg []byte) (int, error) {
	if len(msg) < MinMessageLen || len(msg) > MaxMessageLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(msg))
	}
	leftLen := len(msg) / 2
	if leftLen > hashLen {
		leftLen = hashLen
	}
	return leftLen, nil
}

// Jumble applies F4Jumble to msg and returns the result in a new slice.
func Jumble(msg []byte) ([]byte, error) {
	leftLen, err := split(msg)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(msg))
	copy(out, msg)
	left, right := out[:leftLen], out[leftLen:]

	xorInto(right, hashG(0, left, len(right)))
	xorInto(left, hashH(0, right, leftLen))
	xorInto(right, hashG(1, left, len(right)))
	xorInto(left, hashH(1, right, leftLen))

	return out, nil
}

// Unjumble applies the inverse of F4Jumble to msg and returns the result in
// a new slice.
func Unjumble(msg []byte) ([]byte, error) {
	leftLen, err := split(msg)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(msg))
	copy(out, msg)
	left, right := out[:leftLen], out[leftLen:]

	xorInto(left, hashH(1, right, leftLen))
	xorInto(right, hashG(1, left, len(right)))
	xorInto(left, hashH(0, right, leftLen))
	xorInto(right, hashG(0, left, len(right)))

	return out, nil
}
