package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		v := NewValidation(ErrCodeInvalidScene)
		if err := v.Err(); err != nil {
			t.Errorf("Err() = %v, want nil", err)
		}
	})

	t.Run("collects fields", func(t *testing.T) {
		v := NewValidation(ErrCodeInvalidScene)
		v.Add("viewport.height", "must be positive, got %d", -1)
		v.Add("items[2].type", "missing")

		err := v.Err()
		if !Is(err, ErrCodeInvalidScene) {
			t.Fatalf("Err() code = %v, want %v", GetCode(err), ErrCodeInvalidScene)
		}

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("errors.As(*ValidationError) = false")
		}
		if len(ve.Fields) != 2 {
			t.Errorf("len(Fields) = %d, want 2", len(ve.Fields))
		}
		if !strings.Contains(err.Error(), "viewport.height: must be positive, got -1") {
			t.Errorf("Error() = %q, missing field detail", err.Error())
		}
	})
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "scene.toml", false},
		{"relative dir", "scenes/list.toml", false},
		{"absolute", "/tmp/scene.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
