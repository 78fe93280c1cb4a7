// Package bitstring provides utilities for operating on densely-packed
// strings of bits, and for moving between text and its bit representation.
package bitstring

import (
	"fmt"
	"unicode/utf8"
)

const byteSize = 8

// A Dense is a bit string where every bit is explicitly represented.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new dense bit string whose contents are a view of data,
// and whose length is bitLen. If bitLen is longer than data, then trailing
// zeros are added. If bitLen is negative, then it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	d := Dense{
		bits: data,
		len:  bitLen,
	}
	for len(d.bits) < d.SizeBytes() {
		d.bits = append(d.bits, 0)
	}
	return d
}

// Empty returns an empty bit string.
func Empty() Dense {
	return Dense{}
}

// FromString converts a string of '1's and '0's to a Dense. Spaces are
// ignored, any other character is an error.
func FromString(s string) (Dense, error) {
	d := Dense{}
	for _, c := range s {
		switch c {
		case '1':
			d.AppendBit(true)
		case '0':
			d.AppendBit(false)
		case ' ':
			continue
		default:
			return Dense{}, fmt.Errorf("invalid bit string rep: %s", s)
		}
	}
	return d, nil
}

// FromText converts text to its bit representation, most significant bit
// first within each byte of the UTF-8 encoding.
func FromText(s string) Dense {
	d := Dense{}
	for _, b := range []byte(s) {
		for p := byteSize - 1; p >= 0; p-- {
			d.AppendBit(b&(1<<p) != 0)
		}
	}
	return d
}

// String renders d as a string of '1's and '0's.
func (d Dense) String() string {
	buf := make([]byte, d.len)
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Text reassembles d into text, reading successive 8-bit groups most
// significant bit first. A trailing group shorter than 8 bits is decoded as a
// short byte. Returns an error if the result is not valid UTF-8.
func (d Dense) Text() (string, error) {
	var out []byte
	for i := 0; i < d.len; i += byteSize {
		var b byte
		for j := i; j < i+byteSize && j < d.len; j++ {
			b <<= 1
			if d.Get(j) {
				b |= 1
			}
		}
		out = append(out, b)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("bit string of len %d does not decode to valid UTF-8", d.len)
	}
	return string(out), nil
}

// Size returns the number of bits in d.
func (d Dense) Size() int {
	return d.len
}

// SizeBytes returns the number of bytes needed to represent d.
func (d Dense) SizeBytes() int {
	return bytesFor(d.len)
}

// Get returns the i-th bit in d. Bits past the end read as zero.
func (d Dense) Get(i int) bool {
	if i >= d.len {
		return false
	}
	j, pos := i/byteSize, i%byteSize
	return 0 < d.bits[j]&(1<<pos)
}

// Flip inverts the i-th bit of d in place.
func (d *Dense) Flip(i int) {
	j, pos := i/byteSize, i%byteSize
	d.bits[j] ^= 1 << pos
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/byteSize, d.len%byteSize
	d.len += 1
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[i] |= 1 << pos
	} else {
		d.bits[i] &= ^(1 << pos)
	}
}

// Append adds the contents of d2 to the end of d.
func (d *Dense) Append(d2 Dense) {
	for i := 0; i < d2.len; i++ {
		d.AppendBit(d2.Get(i))
	}
}

// Not returns a copy of d with every bit flipped.
func (d Dense) Not() Dense {
	r := Dense{}
	for i := 0; i < d.len; i++ {
		r.AppendBit(!d.Get(i))
	}
	return r
}

// ZFill returns a copy of d left-padded with zeros to n bits. If d already
// holds n or more bits it is returned unchanged.
func (d Dense) ZFill(n int) Dense {
	if d.len >= n {
		return d
	}
	r := Dense{}
	for i := 0; i < n-d.len; i++ {
		r.AppendBit(false)
	}
	r.Append(d)
	return r
}

// Prefix returns a copy of the first n bits of d. If d holds fewer than n
// bits it is returned unchanged.
func (d Dense) Prefix(n int) Dense {
	if d.len <= n {
		return d
	}
	r := Dense{}
	for i := 0; i < n; i++ {
		r.AppendBit(d.Get(i))
	}
	return r
}

// Chunks slices d into groups of width bits. The final group may be shorter
// if width does not divide the size of d.
func (d Dense) Chunks(width int) []Dense {
	var r []Dense
	for i := 0; i < d.len; i += width {
		c := Dense{}
		for j := i; j < i+width && j < d.len; j++ {
			c.AppendBit(d.Get(j))
		}
		r = append(r, c)
	}
	return r
}

// Join concatenates chunks into a single bit string.
func Join(chunks []Dense) Dense {
	r := Dense{}
	for _, c := range chunks {
		r.Append(c)
	}
	return r
}

func bytesFor(bits int) int {
	return (bits + byteSize - 1) / byteSize
}
