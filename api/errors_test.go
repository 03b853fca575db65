package api_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := api.OutOfRange(5, 3)
	if !errors.Is(err, api.ErrOutOfRange) {
		t.Error("OutOfRange should match ErrOutOfRange")
	}
	if errors.Is(err, api.ErrInvalidIterationState) {
		t.Error("OutOfRange should not match ErrInvalidIterationState")
	}
	wrapped := fmt.Errorf("read sample: %w", err)
	if !errors.Is(wrapped, api.ErrOutOfRange) {
		t.Error("wrapped OutOfRange should match ErrOutOfRange")
	}
}

func TestErrorContext(t *testing.T) {
	err := api.InvalidCapacity(-2)
	if err.Code != api.ErrCodeInvalidConfiguration {
		t.Errorf("Code = %v, want %v", err.Code, api.ErrCodeInvalidConfiguration)
	}
	if err.Context["capacity"] != -2 {
		t.Errorf("Context[capacity] = %v, want -2", err.Context["capacity"])
	}
	if !strings.Contains(err.Error(), "capacity:-2") {
		t.Errorf("Error() = %q, want capacity in context", err.Error())
	}
	if api.ErrOutOfRange.Error() != "index out of range" {
		t.Errorf("sentinel message = %q", api.ErrOutOfRange.Error())
	}
}

func TestErrorCodeString(t *testing.T) {
	cases := map[api.ErrorCode]string{
		api.ErrCodeOK:                    "ok",
		api.ErrCodeOutOfRange:            "out of range",
		api.ErrCodeInvalidIterationState: "invalid iteration state",
		api.ErrCodeInvalidConfiguration:  "invalid configuration",
		api.ErrCodeInternal:              "internal",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
}
