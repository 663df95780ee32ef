package tlv

import "go.briarwood.dev/der"

// Serializer builds a DER encoding by appending one node at a time. Nested
// constructed values are handled with a back-patching scheme: a single
// placeholder length octet is written for a constructed node before its
// content is appended, and once the content is known the placeholder is
// patched in place to the actual minimal-length encoding, growing the
// header in-place if more than one length octet turns out to be required.
// See spec.md §6.
type Serializer struct {
	buf []byte
}

// NewSerializer returns an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Bytes returns the encoded bytes accumulated so far. The returned slice
// aliases the Serializer's internal buffer and must not be retained across
// further calls that mutate s.
func (s *Serializer) Bytes() []byte {
	return s.buf
}

// AppendPrimitive appends a primitive TLV with identifier id and content
// content. It panics if id.Constructed is true: per spec.md §7, passing a
// constructed identifier to a primitive append is a programmer error,
// enforced by a precondition check rather than silently cleared.
func (s *Serializer) AppendPrimitive(id der.Identifier, content []byte) {
	if id.Constructed {
		panic("tlv: AppendPrimitive requires a primitive identifier")
	}
	s.buf = appendIdentifier(s.buf, id)
	s.buf = appendLength(s.buf, len(content))
	s.buf = append(s.buf, content...)
}

// AppendEncoded appends already-encoded TLV bytes verbatim, e.g. a Node's
// EncodedBytes. The caller is responsible for ensuring encoded is valid
// DER.
func (s *Serializer) AppendEncoded(encoded []byte) {
	s.buf = append(s.buf, encoded...)
}

// AppendConstructed appends a constructed TLV with identifier id, calling
// build to append the content octets. build is typically a closure that
// calls back into s (e.g. further AppendPrimitive/AppendConstructed calls)
// to produce the nested content; the length header is back-patched once
// build returns. It panics if id.Constructed is false, the converse
// precondition check to [Serializer.AppendPrimitive].
func (s *Serializer) AppendConstructed(id der.Identifier, build func(s *Serializer)) {
	if !id.Constructed {
		panic("tlv: AppendConstructed requires a constructed identifier")
	}
	s.buf = appendIdentifier(s.buf, id)

	lengthPos := len(s.buf)
	s.buf = append(s.buf, 0) // one-byte placeholder

	contentPos := len(s.buf)
	build(s)
	contentLen := len(s.buf) - contentPos

	s.patchLength(lengthPos, contentPos, contentLen)
}

// patchLength overwrites the placeholder length octet at lengthPos (with
// content starting at contentPos and running for contentLen bytes) with the
// minimal DER length encoding. If the minimal encoding needs more than one
// octet, the bytes from contentPos onward are shifted right to make room.
func (s *Serializer) patchLength(lengthPos, contentPos, contentLen int) {
	if contentLen <= 0x7f {
		s.buf[lengthPos] = byte(contentLen)
		return
	}

	k := minLengthOctets(contentLen)
	extra := k // placeholder already accounts for the 0x80|k octet itself
	s.moveRange(contentPos, extra)

	s.buf[lengthPos] = 0x80 | byte(k)
	for i := 0; i < k; i++ {
		s.buf[lengthPos+1+i] = byte(contentLen >> uint((k-1-i)*8))
	}
}

// moveRange grows s.buf by n bytes and shifts everything from at onward to
// make room, leaving n bytes of uninitialized space at [at, at+n). n must
// be positive: this scheme only ever needs to grow a header, never shrink
// one, since the placeholder is sized for the common one-byte case.
func (s *Serializer) moveRange(at, n int) {
	if n <= 0 {
		panic("tlv: moveRange requires a positive offset")
	}
	s.buf = append(s.buf, make([]byte, n)...)
	copy(s.buf[at+n:], s.buf[at:len(s.buf)-n])
}
