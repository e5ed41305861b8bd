package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается, когда обновление не затронуло ни одной строки:
// профиля с таким внутренним id не существует.
var ErrNotFound = errors.New("user not found")

// ErrAlreadyMapped возвращается при попытке зарегистрировать пару
// (сервис, внешний id), для которой сопоставление уже создано.
// Срабатывает на уникальном ограничении хранилища, которое и является
// решающей защитой от гонки двух одновременных регистраций.
var ErrAlreadyMapped = errors.New("external id is already mapped to a user")

// ConversionError означает, что сохранённое значение поля нарушает
// инвариант типа-значения при чтении. Отличается от ошибки хранилища:
// строка найдена, но её содержимое испорчено.
type ConversionError struct {
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("stored %s is malformed: %s", e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
