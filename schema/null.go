package schema

import (
	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// Null is an ASN.1 NULL: a primitive value with zero-length content. It is
// not one of the spec's exemplar primitives but is small enough, and common
// enough as a DEFAULT/OPTIONAL placeholder in real schemas, to include
// alongside them.
type Null struct{}

// DefaultIdentifier returns the UNIVERSAL, primitive, tag-number-5
// identifier NULL is encoded with absent a tagging override.
func (Null) DefaultIdentifier() der.Identifier {
	return der.NewIdentifier(der.TagNull)
}

// DecodeNode decodes n as a NULL, failing unless its content is empty.
func (n *Null) DecodeNode(node tlv.Node) error {
	if node.Identifier != n.DefaultIdentifier() {
		return der.NewError(der.KindUnexpectedType, "expected "+n.DefaultIdentifier().String())
	}
	if node.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "NULL must be primitive")
	}
	if len(node.Content()) != 0 {
		return der.NewError(der.KindInvalid, "NULL content must be empty")
	}
	return nil
}

// EncodeNode appends an empty NULL to s under the given identifier.
func (n Null) EncodeNode(s *tlv.Serializer, id der.Identifier) error {
	s.AppendPrimitive(id, nil)
	return nil
}
