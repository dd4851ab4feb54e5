package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	plain := New(ErrCodeInvalidScene, "viewport height must be positive, got %d", -3)
	if got, want := plain.Error(), "INVALID_SCENE: viewport height must be positive, got -3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeFileNotFound, errors.New("no such file"), "scene %s", "a.toml")
	if got, want := wrapped.Error(), "FILE_NOT_FOUND: scene a.toml: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write layout")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestCodeLookups(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		kind Kind
		msg  string
	}{
		{"coded", New(ErrCodeInvalidConfig, "bad level"), ErrCodeInvalidConfig, KindInvalid, "bad level"},
		{"outer code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidScene, "inner"), "outer"), ErrCodeInternal, KindInternal, "outer"},
		{"behind fmt wrap", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "missing")), ErrCodeFileNotFound, KindNotFound, "missing"},
		{"joined", errors.Join(errors.New("context"), New(ErrCodeHostContract, "bad host")), ErrCodeHostContract, KindInternal, "bad host"},
		{"plain", errors.New("plain error"), "", KindInternal, "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false, want true", tt.code)
			}
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf() = %v, want %v", got, tt.kind)
			}
			if got := UserMessage(tt.err); got != tt.msg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestIsRejects(t *testing.T) {
	if Is(nil, ErrCodeInvalidInput) {
		t.Error("Is(nil) = true")
	}
	if Is(New(ErrCodeInvalidScene, "x"), ErrCodeHostContract) {
		t.Error("Is() matched a different code")
	}
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
}

func TestCodeKind(t *testing.T) {
	tests := map[Code]Kind{
		ErrCodeInvalidInput:  KindInvalid,
		ErrCodeInvalidScene:  KindInvalid,
		ErrCodeInvalidConfig: KindInvalid,
		ErrCodeInvalidFormat: KindInvalid,
		ErrCodeInvalidPath:   KindInvalid,
		ErrCodeNotFound:      KindNotFound,
		ErrCodeFileNotFound:  KindNotFound,
		ErrCodeUnsupported:   KindUnsupported,
		ErrCodeHostContract:  KindInternal,
		ErrCodeInternal:      KindInternal,
		"SOMETHING_ELSE":     KindInternal,
	}
	for code, want := range tests {
		if got := code.Kind(); got != want {
			t.Errorf("%s.Kind() = %v, want %v", code, got, want)
		}
	}
}
