package session

import (
	"context"
	"testing"
)

func TestMemoryStore_CurrentUser(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	userID, err := store.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "" {
		t.Errorf("fresh store current user = %q, want empty", userID)
	}

	if err := store.SetCurrentUser(ctx, "user-42"); err != nil {
		t.Fatal(err)
	}
	userID, err = store.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "user-42" {
		t.Errorf("current user = %q, want user-42", userID)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	userID, err = store.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "" {
		t.Errorf("current user after Clear() = %q, want empty", userID)
	}
}

func TestMemoryStore_Theme(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if theme != DefaultTheme {
		t.Errorf("fresh store theme = %q, want %q", theme, DefaultTheme)
	}

	if err := store.SetTheme(ctx, "dark"); err != nil {
		t.Fatal(err)
	}
	theme, err = store.Theme(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if theme != "dark" {
		t.Errorf("theme = %q, want dark", theme)
	}

	// Тема не затирается при завершении сессии.
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	theme, err = store.Theme(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if theme != "dark" {
		t.Errorf("theme after Clear() = %q, want dark", theme)
	}
}
