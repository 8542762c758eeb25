package hwp5

import (
	"errors"
	"testing"

	"github.com/kohwp/hwp/internal/container"
)

func TestSectionStreamName(t *testing.T) {
	if got := sectionStreamName(false, 2); got != "BodyText/Section2" {
		t.Errorf("sectionStreamName(false, 2) = %q", got)
	}
	if got := sectionStreamName(true, 0); got != "ViewText/Section0" {
		t.Errorf("sectionStreamName(true, 0) = %q", got)
	}
}

func TestWrapMissingRequiredStream(t *testing.T) {
	wrapped := wrapMissingRequiredStream(container.ErrStreamNotFound)
	if !errors.Is(wrapped, ErrStreamNotFound) {
		t.Errorf("wrapMissingRequiredStream(container.ErrStreamNotFound) = %v, want wrapping ErrStreamNotFound", wrapped)
	}

	other := errors.New("some other failure")
	if errors.Is(wrapMissingRequiredStream(other), ErrStreamNotFound) {
		t.Error("wrapMissingRequiredStream should not reclassify unrelated errors as ErrStreamNotFound")
	}
}
