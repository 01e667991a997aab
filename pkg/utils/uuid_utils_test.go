package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUIDv7(t *testing.T) {
	a := GenerateUUIDv7()
	b := GenerateUUIDv7()
	if a == uuid.Nil || b == uuid.Nil {
		t.Fatal("expected non-nil uuids")
	}
	if a == b {
		t.Fatal("expected distinct uuids")
	}
	if a.Version() != 7 {
		t.Fatalf("expected version 7, got %d", a.Version())
	}
}

func TestGenerateUUIDv7_FallsBackToV4(t *testing.T) {
	orig := newUUIDv7
	t.Cleanup(func() { newUUIDv7 = orig })

	newUUIDv7 = func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("v7 failed")
	}

	id := GenerateUUIDv7()
	if id == uuid.Nil {
		t.Fatal("expected fallback id when v7 generation fails")
	}
	if id.Version() != 4 {
		t.Fatalf("expected version 4 fallback, got %d", id.Version())
	}
}
