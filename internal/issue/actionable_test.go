// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			want: "failed to load configuration: config.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "pack course",
				Resource:  "./my-course",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to pack course: ./my-course: permission denied",
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

func TestErrorContextBuilder(t *testing.T) {
	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Run 'edpak config init' to create one").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() = nil")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap its cause")
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("config.cue").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestFormatVerboseIncludesChain(t *testing.T) {
	inner := errors.New("inner cause")
	ae := WrapWithOperation(inner, "unpack archive")

	plain := ae.Format(false)
	if strings.Contains(plain, "Error chain") {
		t.Error("non-verbose Format() should not include the error chain")
	}

	verbose := ae.Format(true)
	if !strings.Contains(verbose, "Error chain") {
		t.Error("verbose Format() should include the error chain")
	}
	if !strings.Contains(verbose, "inner cause") {
		t.Error("verbose Format() should include the cause message")
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
