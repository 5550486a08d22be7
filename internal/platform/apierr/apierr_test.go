package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "fallback"},
		{"typed", New(http.StatusServiceUnavailable, "store_down", errors.New("x")), http.StatusServiceUnavailable, "store_down"},
		{"wrapped", fmt.Errorf("load: %w", Internal("load_failed", errors.New("x"))), http.StatusInternalServerError, "load_failed"},
		{"zero status", &Error{Code: "c"}, http.StatusInternalServerError, "c"},
		{"empty code", &Error{Status: http.StatusBadRequest}, http.StatusBadRequest, "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := StatusOf(tc.err, "fallback")
			if status != tc.wantStatus || code != tc.wantCode {
				t.Fatalf("got (%d,%q) want (%d,%q)", status, code, tc.wantStatus, tc.wantCode)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(500, "code", nil).Error(); got != "code" {
		t.Fatalf("got %q", got)
	}
	if got := New(502, "", nil).Error(); got != "api error (502)" {
		t.Fatalf("got %q", got)
	}
	if got := Internal("c", errors.New("inner")).Error(); got != "inner" {
		t.Fatalf("got %q", got)
	}
}
