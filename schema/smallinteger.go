package schema

import (
	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// SmallInteger is an ASN.1 INTEGER restricted to the int64 range. It is not
// one of the spec's exemplar primitives, but the schema combinators (e.g.
// SEQUENCE OF length counters, version fields) need a concrete INTEGER type
// to be exercised against, so this package supplies the common
// machine-word-sized case; arbitrary-precision INTEGER is left to an
// external collaborator, consistent with spec.md §1's "out of scope"
// boundary.
type SmallInteger int64

// DefaultIdentifier returns the UNIVERSAL, primitive, tag-number-2
// identifier INTEGER is encoded with absent a tagging override.
func (SmallInteger) DefaultIdentifier() der.Identifier {
	return der.NewIdentifier(der.TagInteger)
}

// DecodeNode decodes n's content as a two's-complement, minimally-encoded
// INTEGER.
func (v *SmallInteger) DecodeNode(n tlv.Node) error {
	if n.Identifier != v.DefaultIdentifier() {
		return der.NewError(der.KindUnexpectedType, "expected "+v.DefaultIdentifier().String())
	}
	if n.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "INTEGER must be primitive")
	}
	content := n.Content()
	if len(content) == 0 {
		return der.NewError(der.KindInvalid, "INTEGER content must not be empty")
	}
	if len(content) > 1 {
		// DER minimality: the first nine bits must not all be equal (that
		// would mean the leading byte is redundant).
		if (content[0] == 0x00 && content[1]&0x80 == 0) ||
			(content[0] == 0xFF && content[1]&0x80 != 0) {
			return der.NewError(der.KindInvalid, "INTEGER content is not minimally encoded")
		}
	}
	if len(content) > 8 {
		return der.NewError(der.KindInvalid, "INTEGER does not fit in 64 bits")
	}

	result := int64(0)
	if content[0]&0x80 != 0 {
		result = -1
	}
	for _, b := range content {
		result = result<<8 | int64(b)
	}
	*v = SmallInteger(result)
	return nil
}

// EncodeNode appends v to s under the given identifier, using the minimal
// two's-complement encoding.
func (v SmallInteger) EncodeNode(s *tlv.Serializer, id der.Identifier) error {
	n := int64(v)
	content := []byte{byte(n)}
	for i := 0; i < 7; i++ {
		n >>= 8
		if (n == 0 && content[len(content)-1]&0x80 == 0) ||
			(n == -1 && content[len(content)-1]&0x80 != 0) {
			break
		}
		content = append(content, byte(n))
	}
	// content was built little-endian; reverse it.
	for i, j := 0, len(content)-1; i < j; i, j = i+1, j-1 {
		content[i], content[j] = content[j], content[i]
	}
	s.AppendPrimitive(id, content)
	return nil
}
