package model

import (
	"errors"
	"testing"
)

func TestResource_Phases(t *testing.T) {
	tests := []struct {
		name      string
		resource  Resource[string]
		isLoading bool
		isSuccess bool
		isError   bool
	}{
		{"loading", Loading[string](), true, false, false},
		{"success", Success("payload"), false, true, false},
		{"error", Failed[string](errors.New("boom")), false, false, true},
		{"zero value", Resource[string]{}, true, false, false},
	}

	for _, test := range tests {
		if test.resource.IsLoading() != test.isLoading {
			t.Errorf("%s: IsLoading() = %v, expected %v", test.name, test.resource.IsLoading(), test.isLoading)
		}
		if test.resource.IsSuccess() != test.isSuccess {
			t.Errorf("%s: IsSuccess() = %v, expected %v", test.name, test.resource.IsSuccess(), test.isSuccess)
		}
		if test.resource.IsError() != test.isError {
			t.Errorf("%s: IsError() = %v, expected %v", test.name, test.resource.IsError(), test.isError)
		}
	}
}

func TestResource_Match_ExactlyOneBranch(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource[int]
		expected string
	}{
		{"loading", Loading[int](), "loading"},
		{"success", Success(42), "success"},
		{"error", Failed[int](errors.New("network timeout")), "error"},
	}

	for _, test := range tests {
		calls := []string{}
		test.resource.Match(
			func() { calls = append(calls, "loading") },
			func(int) { calls = append(calls, "success") },
			func(error) { calls = append(calls, "error") },
		)

		if len(calls) != 1 {
			t.Errorf("%s: expected exactly one branch, got %d: %v", test.name, len(calls), calls)
			continue
		}
		if calls[0] != test.expected {
			t.Errorf("%s: expected branch %s, got %s", test.name, test.expected, calls[0])
		}
	}
}

func TestResource_Match_NilHandlers(t *testing.T) {
	// A subset of handlers must be safe to pass
	Loading[int]().Match(nil, nil, nil)
	Success(1).Match(nil, nil, nil)
	Failed[int](errors.New("x")).Match(nil, nil, nil)
}

func TestResource_Value(t *testing.T) {
	value, ok := Success("apod").Value()
	if !ok || value != "apod" {
		t.Errorf("Expected value 'apod', got '%s' (ok=%v)", value, ok)
	}

	_, ok = Loading[string]().Value()
	if ok {
		t.Error("Loading resource should not expose a value")
	}

	_, ok = Failed[string](errors.New("boom")).Value()
	if ok {
		t.Error("Failed resource should not expose a value")
	}
}

func TestResource_Err(t *testing.T) {
	cause := errors.New("network timeout")
	if err := Failed[int](cause).Err(); !errors.Is(err, cause) {
		t.Errorf("Expected cause error, got %v", err)
	}

	if err := Loading[int]().Err(); err != nil {
		t.Errorf("Loading resource should have nil error, got %v", err)
	}

	if err := Success(1).Err(); err != nil {
		t.Errorf("Success resource should have nil error, got %v", err)
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseLoading, "Loading"},
		{PhaseSuccess, "Success"},
		{PhaseError, "Error"},
		{Phase(99), "Unknown"},
	}

	for _, test := range tests {
		if result := test.phase.String(); result != test.expected {
			t.Errorf("Phase(%d).String() = %s, expected %s", test.phase, result, test.expected)
		}
	}
}
