package models

type UserRole string // Роль пользователя на платформе

const (
	RoleStudent UserRole = "student" // Студент, размещает задания
	RoleTutor   UserRole = "tutor"   // Репетитор, откликается и выполняет работу
	RoleAdmin   UserRole = "admin"   // Администратор, видит сводную аналитику
)

// User представляет модель пользователя.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// RegisterRequest представляет структуру запроса для регистрации пользователя.
type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// LoginRequest представляет структуру запроса для входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
