package schema

import (
	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// BitString is an ASN.1 BIT STRING: a sequence of bits represented as whole
// bytes plus a count of unused low-order padding bits in the final byte.
// See spec.md §4.7.
type BitString struct {
	Bytes       []byte
	PaddingBits int
}

// DefaultIdentifier returns the UNIVERSAL, primitive, tag-number-3
// identifier BIT STRING is encoded with absent a tagging override.
func (BitString) DefaultIdentifier() der.Identifier {
	return der.NewIdentifier(der.TagBitString)
}

// validate checks the BIT STRING invariants: if there are no value bytes,
// there must be no padding bits, and the low PaddingBits bits of the final
// byte must be zero. PaddingBits outside [0,7] is a programmer error, not a
// validation failure — callers must not construct a BitString that way.
func (b BitString) validate() error {
	if b.PaddingBits < 0 || b.PaddingBits > 7 {
		panic("schema: BitString.PaddingBits out of range [0,7]")
	}
	if len(b.Bytes) == 0 {
		if b.PaddingBits != 0 {
			return der.NewError(der.KindInvalid, "empty BIT STRING must have zero padding bits")
		}
		return nil
	}
	last := b.Bytes[len(b.Bytes)-1]
	mask := byte(1<<uint(b.PaddingBits) - 1)
	if last&mask != 0 {
		return der.NewError(der.KindInvalid, "BIT STRING padding bits must be zero")
	}
	return nil
}

// DecodeNode decodes n's content as a BIT STRING.
func (b *BitString) DecodeNode(n tlv.Node) error {
	if n.Identifier != b.DefaultIdentifier() {
		return der.NewError(der.KindUnexpectedType, "expected "+b.DefaultIdentifier().String())
	}
	if n.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "BIT STRING must be primitive")
	}
	content := n.Content()
	if len(content) == 0 {
		return der.NewError(der.KindInvalid, "BIT STRING content must include a padding-bits octet")
	}
	padding := int(content[0])
	if padding < 0 || padding > 7 {
		return der.NewError(der.KindInvalid, "BIT STRING padding-bits octet out of range [0,7]")
	}
	decoded := BitString{Bytes: content[1:], PaddingBits: padding}
	if err := decoded.validate(); err != nil {
		return err
	}
	*b = decoded
	return nil
}

// EncodeNode appends b to s under the given identifier. It returns an error
// if b is not in a valid state (see validate); it only panics if
// b.PaddingBits itself is outside [0,7], a programmer error rather than a
// validation failure.
func (b BitString) EncodeNode(s *tlv.Serializer, id der.Identifier) error {
	if err := b.validate(); err != nil {
		return err
	}
	content := make([]byte, 0, len(b.Bytes)+1)
	content = append(content, byte(b.PaddingBits))
	content = append(content, b.Bytes...)
	s.AppendPrimitive(id, content)
	return nil
}
