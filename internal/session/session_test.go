package session

import (
	"context"
	"testing"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

func TestSessionDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(NewID(), NewMemoryStore())

	user, err := s.User(ctx)
	if err != nil || user != nil {
		t.Fatalf("User() = %v, %v; want nil, nil", user, err)
	}
	dark, err := s.DarkMode(ctx)
	if err != nil || dark {
		t.Errorf("DarkMode() = %v, %v; want false", dark, err)
	}
	lang, err := s.Language(ctx)
	if err != nil || lang != models.DefaultLanguage {
		t.Errorf("Language() = %q, %v; want %q", lang, err, models.DefaultLanguage)
	}
}

func TestSessionSignInOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(NewID(), store)

	rec := models.UserRecord{FullName: "Asha Rao", Email: "asha@example.com"}
	if err := s.SignIn(ctx, rec, "tok"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := s.SetDarkMode(ctx, true); err != nil {
		t.Fatal(err)
	}

	got, err := s.User(ctx)
	if err != nil || got == nil || *got != rec {
		t.Fatalf("User() = %v, %v; want %v", got, err, rec)
	}
	if raw, _, _ := s.Get(ctx, KeyDarkMode); raw != "true" {
		t.Errorf("stored darkMode = %q, want \"true\"", raw)
	}

	other := New(NewID(), store)
	if u, _ := other.User(ctx); u != nil {
		t.Errorf("other session sees user %v", u)
	}

	if err := s.SignOut(ctx); err != nil {
		t.Fatal(err)
	}
	if u, _ := s.User(ctx); u != nil {
		t.Errorf("User() after SignOut = %v", u)
	}
	if tok, _ := s.Token(ctx); tok != "" {
		t.Errorf("Token() after SignOut = %q", tok)
	}
	if dark, _ := s.DarkMode(ctx); !dark {
		t.Error("SignOut cleared darkMode")
	}
}

func TestSessionCorruptUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(NewID(), NewMemoryStore())
	_ = s.Set(ctx, KeyUser, "{not json")

	if _, err := s.User(ctx); err == nil {
		t.Error("User() with corrupt record returned nil error")
	}
}

func TestValidID(t *testing.T) {
	t.Parallel()
	if !ValidID(NewID()) {
		t.Error("ValidID(NewID()) = false")
	}
	for _, id := range []string{"", "abc", "../../etc"} {
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true", id)
		}
	}
}
