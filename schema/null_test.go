package schema

import (
	"bytes"
	"testing"

	"go.briarwood.dev/der/tlv"
)

func TestNullRoundTrip(t *testing.T) {
	var n Null
	s := tlv.NewSerializer()
	if err := n.EncodeNode(s, n.DefaultIdentifier()); err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	if !bytes.Equal(s.Bytes(), []byte{0x05, 0x00}) {
		t.Fatalf("Bytes() = %X, want 0500", s.Bytes())
	}

	node := decodeOne(t, s.Bytes())
	var got Null
	if err := got.DecodeNode(node); err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
}

func TestNullRejectsNonEmptyContent(t *testing.T) {
	node := decodeOne(t, []byte{0x05, 0x01, 0x00})
	var n Null
	if err := n.DecodeNode(node); err == nil {
		t.Fatal("expected error for non-empty NULL content")
	}
}
