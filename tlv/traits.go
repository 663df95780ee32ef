package tlv

import "go.briarwood.dev/der"

// Unmarshaler is implemented by types that can decode themselves from a
// parsed Node. DecodeNode must itself reject a Node whose identifier does
// not match the type's expected identifier (for an [ImplicitlyTaggable]
// type, its DefaultIdentifier) with KindUnexpectedType — callers must be
// able to call DecodeNode directly, with no tag check of their own, and get
// unexpectedFieldType on a mismatch rather than a misdecoded value.
type Unmarshaler interface {
	DecodeNode(n Node) error
}

// Marshaler is implemented by types that can encode themselves by appending
// to a Serializer under a given identifier.
type Marshaler interface {
	EncodeNode(s *Serializer, id der.Identifier) error
}

// Encodable is implemented by types that know their own default identifier
// and can encode themselves under it or an overriding one. Every
// [ImplicitlyTaggable] type is Encodable; this narrower interface exists
// for encode-only combinators (see [go.briarwood.dev/der/schema]) whose
// values need not support DecodeNode — notably a bare value type like
// schema.Boolean, as opposed to a pointer to one, which only has
// value-receiver methods in its method set.
type Encodable interface {
	Marshaler

	// DefaultIdentifier returns the identifier this type is encoded with
	// when no tagging override applies.
	DefaultIdentifier() der.Identifier
}

// ImplicitlyTaggable is implemented by types that have a default identifier
// (the UNIVERSAL tag they are encoded with in the absence of any tagging
// override) and can both decode and encode. Encoding under an overriding
// identifier is supported through EncodeNode's id parameter; DecodeNode
// takes no identifier and accepts only the DefaultIdentifier, so decoding
// under an overriding (IMPLICIT) tag is not supported. See spec.md §4.5.
type ImplicitlyTaggable interface {
	Unmarshaler
	Encodable
}
