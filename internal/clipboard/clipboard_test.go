package clipboard

import "testing"

func TestDiscard(t *testing.T) {
	var w Writer = Discard{}
	if err := w.WriteAll("secret"); err != nil {
		t.Fatalf("Discard.WriteAll() unexpected error: %v", err)
	}
}

func TestSystemImplementsWriter(t *testing.T) {
	var _ Writer = System{}
}

func TestErrUnavailable(t *testing.T) {
	if ErrUnavailable.Error() != "clipboard unavailable" {
		t.Fatalf("unexpected error message: %s", ErrUnavailable.Error())
	}
}
