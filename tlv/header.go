// Package tlv implements the byte-level tag-length-value substrate for DER:
// the identifier and length octet codecs, the flat parser that turns an
// input buffer into a depth-tagged node buffer, the lazy [Node] tree view
// over that buffer, and the back-patching [Serializer]. This package deals
// purely with syntax; it knows nothing about SEQUENCE, SET, or any
// particular primitive type — that semantic layer lives in
// [go.briarwood.dev/der/schema].
//
// Unlike a general BER/CER/DER toolkit, this package only accepts strict
// DER: the indefinite-length form is rejected, lengths and long-form tag
// numbers must use their minimal encoding, and the input must be fully
// buffered up front (there is no streaming decoder here — see spec.md's
// Non-goals).
package tlv

import (
	"io"
	"math"

	"go.briarwood.dev/der"
	"go.briarwood.dev/der/internal/vlq"
)

// byteCursor adapts a []byte to the io.ByteReader interface expected by the
// internal/vlq helpers, advancing through the underlying slice as bytes are
// consumed. byteAppender is the io.ByteWriter counterpart, appending to its
// slice.
type byteCursor struct {
	data []byte
}

func (c *byteCursor) ReadByte() (byte, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	b := c.data[0]
	c.data = c.data[1:]
	return b, nil
}

type byteAppender struct {
	buf []byte
}

func (a *byteAppender) WriteByte(b byte) error {
	a.buf = append(a.buf, b)
	return nil
}

// decodeIdentifier decodes the identifier octets at the front of data,
// returning the decoded identifier and the remaining bytes. See spec.md
// §4.1.
func decodeIdentifier(data []byte) (der.Identifier, []byte, error) {
	if len(data) == 0 {
		return der.Identifier{}, nil, der.NewError(der.KindTruncated, "empty input where an identifier was expected")
	}
	b0 := data[0]
	data = data[1:]

	id := der.Identifier{
		Class:       der.Class(b0>>6) & 0x3,
		Constructed: b0&0x20 != 0,
	}
	if b0&0x1f != 0x1f {
		id.Number = uint64(b0 & 0x1f)
		return id, data, nil
	}

	cur := &byteCursor{data: data}
	n, err := vlq.ReadMinimal[uint64](cur)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return der.Identifier{}, nil, der.Wrap(der.KindTruncated, "truncated long-form tag number", err)
		}
		return der.Identifier{}, nil, der.Wrap(der.KindInvalid, "malformed long-form tag number", err)
	}
	if n < 31 {
		return der.Identifier{}, nil, der.NewError(der.KindInvalid, "long-form tag number encodes a value that fits the short form")
	}
	id.Number = n
	return id, cur.data, nil
}

// decodeLength decodes the length octets at the front of data, returning
// the decoded length (in bytes) and the remaining bytes. Indefinite and
// non-minimal long-form lengths are rejected, per spec.md §4.2.
func decodeLength(data []byte) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, der.NewError(der.KindTruncated, "empty input where a length was expected")
	}
	b0 := data[0]
	data = data[1:]

	if b0 == 0x80 {
		return 0, nil, der.NewError(der.KindUnsupportedLength, "indefinite length form is not valid DER")
	}
	if b0&0x80 == 0 {
		return int(b0), data, nil
	}

	n := int(b0 & 0x7f)
	if len(data) < n {
		return 0, nil, der.NewError(der.KindTruncated, "truncated long-form length")
	}
	lengthBytes := data[:n]
	data = data[n:]

	length := 0
	for _, b := range lengthBytes {
		if length > math.MaxInt>>8 {
			return 0, nil, der.NewError(der.KindInvalid, "length too large to represent")
		}
		length = length<<8 | int(b)
	}
	if n != minLengthOctets(length) {
		return 0, nil, der.NewError(der.KindUnsupportedLength, "non-minimal long-form length")
	}
	return length, data, nil
}

// minLengthOctets returns the number of big-endian value octets required to
// encode length in the DER long form, i.e. ceil(bitlen(length)/8). For
// length <= 0x7f the long form is never valid DER (the short form must be
// used instead); callers check the result against the actual n used.
func minLengthOctets(length int) int {
	if length <= 0x7f {
		return 0
	}
	n := 0
	for v := length; v > 0; v >>= 8 {
		n++
	}
	return n
}

// appendIdentifier appends the minimal DER encoding of id to buf and
// returns the grown slice.
func appendIdentifier(buf []byte, id der.Identifier) []byte {
	b0 := byte(id.Class&0x3) << 6
	if id.Constructed {
		b0 |= 0x20
	}
	if id.Number < 31 {
		b0 |= byte(id.Number)
		return append(buf, b0)
	}
	b0 |= 0x1f
	buf = append(buf, b0)
	a := &byteAppender{buf: buf}
	_, _ = vlq.Write(a, id.Number)
	return a.buf
}

// appendLength appends the minimal DER encoding of the length n to buf and
// returns the grown slice.
func appendLength(buf []byte, n int) []byte {
	if n < 0 {
		panic("tlv: negative length")
	}
	if n <= 0x7f {
		return append(buf, byte(n))
	}
	k := minLengthOctets(n)
	buf = append(buf, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		buf = append(buf, byte(n>>uint(i*8)))
	}
	return buf
}
