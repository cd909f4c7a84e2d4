package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, страница выборки или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных (тело запроса
	// отсутствует или не разбирается).
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется, когда операция с хранилищем была начата,
	// но завершилась неуспешно.
	ErrUnprocessable = errors.New("unprocessable operation")
)
