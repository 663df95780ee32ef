package schema

import (
	"errors"
	"fmt"
	"testing"

	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

func decodeOne(t *testing.T, hexBytes []byte) tlv.Node {
	t.Helper()
	res, err := tlv.Parse(hexBytes)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return res.Root()
}

func TestBooleanDecodeTrue(t *testing.T) {
	n := decodeOne(t, []byte{0x01, 0x01, 0xFF})
	var b Boolean
	if err := b.DecodeNode(n); err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !b {
		t.Fatal("expected true")
	}
}

func TestBooleanDecodeFalse(t *testing.T) {
	n := decodeOne(t, []byte{0x01, 0x01, 0x00})
	var b Boolean
	if err := b.DecodeNode(n); err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if b {
		t.Fatal("expected false")
	}
}

// scenario 2: 01 01 01 fails DER-strict BOOLEAN decoding.
func TestBooleanDecodeRejectsNonCanonicalValue(t *testing.T) {
	n := decodeOne(t, []byte{0x01, 0x01, 0x01})
	var b Boolean
	err := b.DecodeNode(n)
	if !errors.Is(err, der.NewError(der.KindInvalid, "")) {
		t.Fatalf("err = %v, want KindInvalid", err)
	}
}

func TestBooleanEncodeDecodeRoundTrip(t *testing.T) {
	for _, v := range []Boolean{true, false} {
		t.Run(fmt.Sprintf("%v", v), func(t *testing.T) {
			s := tlv.NewSerializer()
			if err := v.EncodeNode(s, v.DefaultIdentifier()); err != nil {
				t.Fatalf("EncodeNode(%v): %v", v, err)
			}
			n := decodeOne(t, s.Bytes())
			var got Boolean
			if err := got.DecodeNode(n); err != nil {
				t.Fatalf("DecodeNode round trip: %v", err)
			}
			if got != v {
				t.Fatalf("round trip %v -> %v", v, got)
			}
		})
	}
}
