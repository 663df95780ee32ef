package schema

import (
	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// Boolean is an ASN.1 BOOLEAN, strictly DER-encoded: the content octet must
// be exactly 0x00 (false) or 0xFF (true); any other value is rejected. See
// spec.md §4.7.
type Boolean bool

// DefaultIdentifier returns the UNIVERSAL, primitive, tag-number-1
// identifier BOOLEAN is encoded with absent a tagging override.
func (Boolean) DefaultIdentifier() der.Identifier {
	return der.NewIdentifier(der.TagBoolean)
}

// DecodeNode decodes n's content as a BOOLEAN.
func (b *Boolean) DecodeNode(n tlv.Node) error {
	if n.Identifier != b.DefaultIdentifier() {
		return der.NewError(der.KindUnexpectedType, "expected "+b.DefaultIdentifier().String())
	}
	if n.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "BOOLEAN must be primitive")
	}
	content := n.Content()
	if len(content) != 1 {
		return der.NewError(der.KindInvalid, "BOOLEAN content must be exactly one octet")
	}
	switch content[0] {
	case 0x00:
		*b = false
	case 0xFF:
		*b = true
	default:
		return der.NewError(der.KindInvalid, "BOOLEAN content octet must be 0x00 or 0xFF")
	}
	return nil
}

// EncodeNode appends b to s under the given identifier.
func (b Boolean) EncodeNode(s *tlv.Serializer, id der.Identifier) error {
	content := byte(0x00)
	if b {
		content = 0xFF
	}
	s.AppendPrimitive(id, []byte{content})
	return nil
}
