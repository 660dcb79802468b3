package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeUniverseNotFound, "universe %d is not configured", 4),
			want: "UNIVERSE_NOT_FOUND: universe 4 is not configured",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInvalidConfig, errors.New("line 3: expected '='"), "config %s", "conmx.toml"),
			want: "INVALID_CONFIG: config conmx.toml: line 3: expected '='",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

var errDangling = errors.New("end node does not exist")

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeGraph, errDangling, "connect %d -> %d", 0, 9)

	if err.Cause != errDangling {
		t.Errorf("Cause = %v, want %v", err.Cause, errDangling)
	}
	if !errors.Is(err, errDangling) {
		t.Error("errors.Is should reach the cause")
	}
	if got := UserMessage(err); got != "connect 0 -> 9" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidAddress, "channel 512"), ErrCodeInvalidAddress, true},
		{"other code", New(ErrCodeInvalidAddress, "channel 512"), ErrCodeInvalidInput, false},
		{"outermost code wins", Wrap(ErrCodeGraph, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeGraph, true},
		{"behind fmt wrapping", fmt.Errorf("patch: %w", New(ErrCodeNodeCreation, "unknown node kind")), ErrCodeNodeCreation, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "bmp")); got != ErrCodeUnsupported {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestUserMessagePlainError(t *testing.T) {
	if got := UserMessage(errors.New("read config: permission denied")); got != "read config: permission denied" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeUniverseNotFound, "universe 3 is not configured"), true},
		{New(ErrCodeNodeNotFound, "node 1"), true},
		{Wrap(ErrCodeNotFound, New(ErrCodeInvalidInput, "inner"), "outer"), true},
		{New(ErrCodeInvalidAddress, "channel 600"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsNotFound(tt.err); got != tt.want {
			t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
