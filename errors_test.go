package der

import (
	"errors"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindInvalid, "bad node", cause)

	if !errors.Is(err, NewError(KindInvalid, "")) {
		t.Error("expected errors.Is to match on Kind")
	}
	if errors.Is(err, NewError(KindTruncated, "")) {
		t.Error("did not expect errors.Is to match a different Kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to unwrap to cause")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(KindUnsupportedLength, "indefinite length")
	want := "UnsupportedLength: indefinite length"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
