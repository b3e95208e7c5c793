package token

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

type identity struct {
	Username string `json:"username"`
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec[identity]("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	tok, err := codec.Encode(identity{Username: "alice"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	got, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", got.Username, "alice")
	}
}

func TestCodec_Expired(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec[identity]("secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	tok, err := codec.Encode(identity{Username: "u1"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	_, err = codec.Decode(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expiry must not be reported as a signature error")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewCodec[identity]("right-secret", time.Hour)
	wrong, _ := NewCodec[identity]("wrong-secret", time.Hour)

	tok, err := right.Encode(identity{Username: "u2"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = wrong.Decode(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_MalformedString(t *testing.T) {
	t.Parallel()

	codec, _ := NewCodec[identity]("k", time.Hour)
	_, err := codec.Decode("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestNewCodec_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec[identity]("", time.Hour)
	if !errors.Is(err, common.ErrKeyCreation) {
		t.Fatalf("expected ErrKeyCreation, got %v", err)
	}
}

func TestNewCodec_NoValidity(t *testing.T) {
	t.Parallel()

	_, err := NewCodec[identity]("k", 0)
	if !errors.Is(err, common.ErrExpiryConfigMissing) {
		t.Fatalf("expected ErrExpiryConfigMissing, got %v", err)
	}
}

func TestFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing header", "", "", common.ErrNoAuthHeader},
		{"wrong scheme", "Basic abc", "", common.ErrMalformedAuthHeader},
		{"lowercase prefix", "bearer abc", "", common.ErrMalformedAuthHeader},
		{"prefix without space", "Bearerabc", "", common.ErrMalformedAuthHeader},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromHeader(tc.header)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("FromHeader(%q) error = %v, want %v", tc.header, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("FromHeader(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("single header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(AuthHeaderName, "Bearer tok")

		got, err := FromRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "tok" {
			t.Fatalf("got %q, want %q", got, "tok")
		}
	})

	t.Run("no header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		if _, err := FromRequest(r); !errors.Is(err, common.ErrNoAuthHeader) {
			t.Fatalf("expected ErrNoAuthHeader, got %v", err)
		}
	})

	t.Run("duplicate headers", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Add(AuthHeaderName, "Bearer one")
		r.Header.Add(AuthHeaderName, "Bearer two")
		if _, err := FromRequest(r); !errors.Is(err, common.ErrMalformedAuthHeader) {
			t.Fatalf("expected ErrMalformedAuthHeader, got %v", err)
		}
	})
}
