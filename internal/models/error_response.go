package models

import "net/http"

type ErrorKind string // Машиночитаемый класс ошибки

const (
	KindValidation     ErrorKind = "validation_error" // Некорректный ввод, отклонён до любых мутаций
	KindNotFound       ErrorKind = "not_found"        // Сущность по ссылке отсутствует
	KindDuplicateBid   ErrorKind = "duplicate_bid"    // Повторный отклик на то же задание
	KindDuplicateEmail ErrorKind = "duplicate_email"  // Email уже занят
	KindMissingTutor   ErrorKind = "missing_tutor"    // Нарушение инварианта: у задания нет исполнителя
	KindForbidden      ErrorKind = "forbidden"        // Действующий пользователь не проходит проверку прав
)

// ErrorResponse описывает ошибку с кодом, классом и сообщением.
type ErrorResponse struct {
	StatusCode int       `json:"-"`
	Kind       ErrorKind `json:"code,omitempty"`
	Message    string    `json:"reason"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// NewValidationError создает ошибку некорректного ввода.
func NewValidationError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

// NewNotFoundError создает ошибку отсутствующей сущности.
func NewNotFoundError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

// NewDuplicateBidError создает ошибку повторного отклика.
func NewDuplicateBidError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusConflict, Kind: KindDuplicateBid, Message: message}
}

// NewDuplicateEmailError создает ошибку занятого email.
func NewDuplicateEmailError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusConflict, Kind: KindDuplicateEmail, Message: message}
}

// NewMissingTutorError создает ошибку нарушенного инварианта:
// задание завершается без назначенного исполнителя. При штатных
// переходах недостижима; если возникла - это баг машины состояний выше.
func NewMissingTutorError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusConflict, Kind: KindMissingTutor, Message: message}
}

// NewForbiddenError создает ошибку прав доступа.
func NewForbiddenError(message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: http.StatusForbidden, Kind: KindForbidden, Message: message}
}

// Реализация метода Error() для удовлетворения интерфейса error.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// IsKind сообщает, относится ли ошибка к указанному классу.
func IsKind(err error, kind ErrorKind) bool {
	errorResponse, ok := err.(*ErrorResponse)
	return ok && errorResponse.Kind == kind
}
