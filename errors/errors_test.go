package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhasePut,
				Kind:   KindUnsupported,
				Path:   []string{"param[2]"},
				Detail: "timestamp into integer buffer",
			},
			contains: []string{"[put]", "unsupported", "param[2]", "timestamp into integer buffer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBuffer,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[buffer]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidInput,
				Detail: "bad address",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[config]", "invalid_input", "bad address", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseBuffer,
		Kind:  KindOutOfBounds,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseGet, Kind: KindInvalidData}
	b := &Error{Phase: PhaseGet, Kind: KindInvalidData, Detail: "different detail"}
	c := &Error{Phase: PhasePut, Kind: KindInvalidData}

	if !errors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different phases should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("parse failed")
	err := New(PhaseConfig, KindInvalidInput).
		Path("address").
		Value("host:bad").
		Cause(cause).
		Detail("port %q is not a number", "bad").
		Build()

	if err.Phase != PhaseConfig || err.Kind != KindInvalidInput {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Value != "host:bad" {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if !strings.Contains(err.Detail, `"bad"`) {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
	if err.Unwrap() != cause {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"out of bounds", OutOfBounds(PhaseBuffer, nil, 24, 16), KindOutOfBounds},
		{"nil pointer", NilPointer(PhaseGet, nil, "data buffer"), KindNilPointer},
		{"unsupported", Unsupported(PhasePut, "guid into float buffer"), KindUnsupported},
		{"not found", NotFound(PhaseBind, "parameter", "7"), KindNotFound},
		{"invalid input", InvalidInput(PhaseConfig, "empty key"), KindInvalidInput},
		{"invalid data", InvalidData(PhaseGet, nil, "short struct"), KindInvalidData},
		{"overflow", Overflow(PhasePut, nil, int64(1) << 40, "int32"), KindOverflow},
		{"wrap", Wrap(PhaseConfig, KindInvalidInput, errors.New("x"), "parse"), KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
