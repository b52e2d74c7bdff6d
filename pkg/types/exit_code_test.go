// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{name: "zero is valid", code: 0, wantErr: false},
		{name: "one is valid", code: 1, wantErr: false},
		{name: "upper bound is valid", code: 255, wantErr: false},
		{name: "negative is invalid", code: -1, wantErr: true},
		{name: "above range is invalid", code: 256, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("Validate() error should wrap ErrInvalidExitCode, got %v", err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitInvalid.IsSuccess() {
		t.Error("ExitInvalid.IsSuccess() = true, want false")
	}
}

func TestExitCodeString(t *testing.T) {
	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("ExitCode(42).String() = %q, want %q", got, "42")
	}
}
