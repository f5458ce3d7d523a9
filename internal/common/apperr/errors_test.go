package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Unauthenticated", ErrUnauthenticated, fiber.StatusUnauthorized},
		{"Unauthorized", ErrUnauthorized, fiber.StatusForbidden},
		{"NotFound", ErrNotFound, fiber.StatusNotFound},
		{"WrappedNotFound", NotFoundf("layout %s", "abc"), fiber.StatusNotFound},
		{"WrappedUnauthorized", fmt.Errorf("create layout: %w", ErrUnauthorized), fiber.StatusForbidden},
		{"Validation", Validation("name is required"), fiber.StatusBadRequest},
		{"Unexpected", errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNotFoundfKeepsContext(t *testing.T) {
	err := NotFoundf("widget %s in layout %s", "w1", "l1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected errors.Is(err, ErrNotFound)")
	}
	want := "widget w1 in layout l1: not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
