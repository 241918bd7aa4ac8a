package services

import (
	"context"
	"testing"

	"github.com/edumarket/tutoring-service/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		req      models.RegisterRequest
		wantKind models.ErrorKind
	}{
		{
			name: "valid student",
			req:  models.RegisterRequest{Name: "Alice", Email: "alice@test.com", Password: "pwd", Role: models.RoleStudent},
		},
		{
			name:     "missing name",
			req:      models.RegisterRequest{Email: "noname@test.com", Password: "pwd", Role: models.RoleStudent},
			wantKind: models.KindValidation,
		},
		{
			name:     "missing email",
			req:      models.RegisterRequest{Name: "Bob", Password: "pwd", Role: models.RoleTutor},
			wantKind: models.KindValidation,
		},
		{
			name:     "invalid role",
			req:      models.RegisterRequest{Name: "Bob", Email: "bob@test.com", Password: "pwd", Role: "teacher"},
			wantKind: models.KindValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			user, err := env.auth.Register(context.Background(), tt.req)
			if tt.wantKind != "" {
				if !models.IsKind(err, tt.wantKind) {
					t.Fatalf("Register() error = %v, want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if user.ID == "" || user.Email != tt.req.Email || user.Role != tt.req.Role {
				t.Errorf("Register() = %+v, want email %s role %s", user, tt.req.Email, tt.req.Role)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Alice", "alice@test.com", models.RoleStudent)

	before, err := env.store.Users().CountUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	_, err = env.auth.Register(context.Background(), models.RegisterRequest{
		Name:     "Another Alice",
		Email:    "alice@test.com",
		Password: "pwd",
		Role:     models.RoleTutor,
	})
	if !models.IsKind(err, models.KindDuplicateEmail) {
		t.Fatalf("Register() error = %v, want kind %s", err, models.KindDuplicateEmail)
	}

	after, err := env.store.Users().CountUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Errorf("user count changed on failed registration: %d -> %d", before, after)
	}
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	registered := env.register(t, "Alice", "alice@test.com", models.RoleStudent)

	// Пароль не проверяется: вход проходит с любым значением.
	user, err := env.auth.Login(context.Background(), "alice@test.com", "whatever")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("Login() = %s, want %s", user.ID, registered.ID)
	}

	current, err := env.auth.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current.ID != registered.ID {
		t.Errorf("CurrentUser() = %s, want %s", current.ID, registered.ID)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Login(context.Background(), "ghost@test.com", "pwd")
	if !models.IsKind(err, models.KindNotFound) {
		t.Fatalf("Login() error = %v, want kind %s", err, models.KindNotFound)
	}
}

func TestAuthService_Logout(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Alice", "alice@test.com", models.RoleStudent)

	if err := env.auth.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := env.auth.CurrentUser(context.Background()); !models.IsKind(err, models.KindNotFound) {
		t.Fatalf("CurrentUser() after logout error = %v, want kind %s", err, models.KindNotFound)
	}
}

func TestAuthService_Theme(t *testing.T) {
	env := newTestEnv(t)

	theme, err := env.auth.Theme(context.Background())
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if theme != "light" {
		t.Errorf("default theme = %s, want light", theme)
	}

	if err := env.auth.SetTheme(context.Background(), "dark"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	theme, err = env.auth.Theme(context.Background())
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if theme != "dark" {
		t.Errorf("theme = %s, want dark", theme)
	}

	if err := env.auth.SetTheme(context.Background(), "solarized"); !models.IsKind(err, models.KindValidation) {
		t.Fatalf("SetTheme() error = %v, want kind %s", err, models.KindValidation)
	}
}
