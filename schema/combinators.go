// Package schema implements the grammar-level combinators (SEQUENCE, SET,
// SEQUENCE OF, explicit/implicit tagging, DEFAULT/OPTIONAL) and a small
// catalog of primitive type codecs (BOOLEAN, BIT STRING, GeneralizedTime,
// NULL, and small INTEGERs) on top of the byte-level substrate in
// [go.briarwood.dev/der/tlv]. Combinators that may or may not consume the
// next child use copy-lookahead: [go.briarwood.dev/der/tlv.Children] is a
// plain value, so snapshotting it for a speculative read is a cheap struct
// copy, and the combinator only writes the snapshot back on success.
package schema

import (
	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// Sequence requires n to be a constructed node with identifier id, invokes
// builder with an iterator over n's children, and requires builder to
// consume every child. id's Constructed field is ignored in favor of the
// explicit IsConstructed() check, so callers may pass either
// der.NewIdentifier(der.TagSequence) or an already-constructed identifier.
// See spec.md §4.6.
func Sequence(n tlv.Node, id der.Identifier, builder func(children *tlv.Children) error) error {
	id.Constructed = true
	if n.Identifier != id || !n.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "expected "+id.String())
	}
	children := n.Children()
	if err := builder(&children); err != nil {
		return err
	}
	if !children.Done() {
		return der.NewError(der.KindInvalid, "unconsumed children after sequence body")
	}
	return nil
}

// Set has identical semantics to [Sequence]. This package does not enforce
// DER SET-of canonical ordering; callers needing strict SET semantics must
// validate it themselves.
func Set(n tlv.Node, id der.Identifier, builder func(children *tlv.Children) error) error {
	return Sequence(n, id, builder)
}

// SequenceOf parses every child of n, in order, as a T, and returns the
// resulting slice. n must be a constructed node with identifier id.
func SequenceOf[T tlv.Unmarshaler](n tlv.Node, id der.Identifier, newT func() T) ([]T, error) {
	id.Constructed = true
	if n.Identifier != id || !n.IsConstructed() {
		return nil, der.NewError(der.KindUnexpectedType, "expected "+id.String())
	}
	children := n.Children()
	return SequenceOfChildren(&children, newT)
}

// SequenceOfChildren drains every remaining child of children, parsing each
// as a T, and returns the resulting slice.
func SequenceOfChildren[T tlv.Unmarshaler](children *tlv.Children, newT func() T) ([]T, error) {
	var result []T
	for {
		child, ok := children.Next()
		if !ok {
			break
		}
		v := newT()
		if err := v.DecodeNode(child); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// ExplicitlyTagged requires n to be a constructed node with the explicit-tag
// identifier for (number, class), requires it to have exactly one child,
// and invokes builder with that child.
func ExplicitlyTagged(n tlv.Node, number uint64, class der.Class, builder func(child tlv.Node) error) error {
	want := der.ExplicitIdentifier(number, class)
	if n.Identifier != want || !n.IsConstructed() {
		return der.NewError(der.KindInvalidTag, "expected explicit tag "+want.String())
	}
	children := n.Children()
	child, ok := children.Next()
	if !ok {
		return der.NewError(der.KindInvalid, "explicit tag has no inner value")
	}
	if !children.Done() {
		return der.NewError(der.KindInvalid, "explicit tag has more than one inner value")
	}
	return builder(child)
}

// ExplicitlyTaggedChildren pops the next child of children and delegates to
// [ExplicitlyTagged]. It fails if children is exhausted.
func ExplicitlyTaggedChildren(children *tlv.Children, number uint64, class der.Class, builder func(child tlv.Node) error) error {
	child, ok := children.Next()
	if !ok {
		return der.NewError(der.KindInvalid, "expected explicit tag, found no child")
	}
	return ExplicitlyTagged(child, number, class, builder)
}

// OptionalExplicitlyTagged performs copy-lookahead on children: if the next
// child is absent or does not carry the explicit-tag identifier for
// (number, class), it returns found=false without consuming anything. If it
// matches, it invokes builder with the inner value and consumes the child
// once that succeeds.
func OptionalExplicitlyTagged(children *tlv.Children, number uint64, class der.Class, builder func(child tlv.Node) error) (found bool, err error) {
	snapshot := *children
	child, ok := snapshot.Next()
	if !ok {
		return false, nil
	}
	want := der.ExplicitIdentifier(number, class)
	if child.Identifier != want {
		return false, nil
	}
	if err := ExplicitlyTagged(child, number, class, builder); err != nil {
		return true, err
	}
	*children = snapshot
	return true, nil
}

// OptionalImplicitlyTagged performs copy-lookahead on children: if the next
// child's identifier does not match v's default identifier, it returns
// found=false without consuming anything. If it matches, it decodes the
// child into v and consumes it once that succeeds.
func OptionalImplicitlyTagged[T tlv.ImplicitlyTaggable](children *tlv.Children, v T) (found bool, err error) {
	snapshot := *children
	child, ok := snapshot.Next()
	if !ok {
		return false, nil
	}
	if child.Identifier != v.DefaultIdentifier() {
		return false, nil
	}
	if err := v.DecodeNode(child); err != nil {
		return true, err
	}
	*children = snapshot
	return true, nil
}

// DecodeDefault performs copy-lookahead on children: if the next child is
// absent or its identifier does not match v's default identifier, it leaves
// v unmodified (so v should hold the default value beforehand) and reports
// present=false. Otherwise it decodes into v and requires the decoded value
// not equal the given default (DER forbids encoding a DEFAULT field at its
// default value), per spec.md §4.6.
func DecodeDefault[T tlv.ImplicitlyTaggable](children *tlv.Children, v T, isDefault func(T) bool) (present bool, err error) {
	snapshot := *children
	child, ok := snapshot.Next()
	if !ok {
		return false, nil
	}
	if child.Identifier != v.DefaultIdentifier() {
		return false, nil
	}
	if err := v.DecodeNode(child); err != nil {
		return false, err
	}
	*children = snapshot
	if isDefault(v) {
		return false, der.NewError(der.KindInvalid, "DEFAULT field encoded at its default value")
	}
	return true, nil
}

// DecodeDefaultExplicitlyTagged composes [OptionalExplicitlyTagged] with the
// same default-value rejection as [DecodeDefault].
func DecodeDefaultExplicitlyTagged[T tlv.ImplicitlyTaggable](children *tlv.Children, number uint64, class der.Class, v T, isDefault func(T) bool) (present bool, err error) {
	found, err := OptionalExplicitlyTagged(children, number, class, func(child tlv.Node) error {
		return v.DecodeNode(child)
	})
	if err != nil || !found {
		return false, err
	}
	if isDefault(v) {
		return false, der.NewError(der.KindInvalid, "DEFAULT field encoded at its default value")
	}
	return true, nil
}

// SerializeExplicitlyTagged appends a constructed explicit-tag wrapper for
// (number, class) around value's own encoding, the encode-side counterpart
// of [ExplicitlyTagged]. See spec.md §4.5.
func SerializeExplicitlyTagged[T tlv.Encodable](s *tlv.Serializer, number uint64, class der.Class, value T) error {
	var encodeErr error
	s.AppendConstructed(der.ExplicitIdentifier(number, class), func(s *tlv.Serializer) {
		encodeErr = value.EncodeNode(s, value.DefaultIdentifier())
	})
	return encodeErr
}

// SerializeOptional appends value's own encoding to s, or emits nothing if
// value is nil. See spec.md §4.5.
func SerializeOptional[T tlv.Encodable](s *tlv.Serializer, value *T) error {
	if value == nil {
		return nil
	}
	return (*value).EncodeNode(s, (*value).DefaultIdentifier())
}

// SerializeSequenceOf appends a constructed node with identifier id
// containing each element of elements encoded in order under its own
// default identifier, the encode-side counterpart of [SequenceOf]. id's
// Constructed field is forced to true, mirroring [SequenceOf]'s tolerance
// of a bare der.NewIdentifier(der.TagSequence) argument. See spec.md §4.5.
func SerializeSequenceOf[T tlv.Encodable](s *tlv.Serializer, id der.Identifier, elements []T) error {
	id.Constructed = true
	var encodeErr error
	s.AppendConstructed(id, func(s *tlv.Serializer) {
		for _, e := range elements {
			if err := e.EncodeNode(s, e.DefaultIdentifier()); err != nil {
				encodeErr = err
				return
			}
		}
	})
	return encodeErr
}
