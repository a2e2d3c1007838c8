package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrConfiguration — в настройках встречаются секции, которых нет в каталоге.
func ErrConfiguration(unknown []string) *AppError {
	return &AppError{
		Code:    "UNKNOWN_SECTION",
		Message: "unknown section ids: " + strings.Join(unknown, ", "),
		Status:  http.StatusBadRequest,
	}
}

// ErrPrecondition — данные выбранного воркспейса не позволяют собрать экран
// (например, в составе нет текущего пользователя).
func ErrPrecondition(msg string, err error) *AppError {
	return &AppError{
		Code:    "SELF_NOT_IN_ROSTER",
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
		Err:     err,
	}
}

// ErrInternal оборачивает неожиданную ошибку нижних слоёв.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}
