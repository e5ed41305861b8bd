package models

import (
	"encoding/json"
	"fmt"
)

// Code двухбуквенный код языка. Хранится как два отдельных символа,
// поэтому значение нужной длины гарантировано самим типом.
type Code [2]rune

// CodeLengthError означает, что строка не состоит ровно из двух символов.
type CodeLengthError struct {
	Value string
}

func (e *CodeLengthError) Error() string {
	return fmt.Sprintf("language code must be exactly 2 characters, got %q", e.Value)
}

// ParseCode разбирает строку в Code. Возвращает *CodeLengthError,
// если длина строки не равна двум символам.
func ParseCode(s string) (Code, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Code{}, &CodeLengthError{Value: s}
	}
	return Code{runes[0], runes[1]}, nil
}

func (c Code) String() string {
	return string(c[:])
}

// MarshalJSON сериализует код как обычную двухсимвольную строку.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON разбирает строку и проверяет инвариант длины.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
