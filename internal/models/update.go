package models

import (
	"fmt"
	"time"
)

// UpdateTarget закрытое объединение из ровно трёх вариантов обновления
// одного поля профиля. Никогда не сохраняется: это разовая инструкция.
// Обработка идёт исчерпывающим type switch по трём типам ниже.
type UpdateTarget interface {
	isUpdateTarget()
}

// LanguageUpdate замена кода языка.
type LanguageUpdate struct {
	Code Code
}

// LocationUpdate замена координат.
type LocationUpdate struct {
	Latitude  float64
	Longitude float64
}

// PremiumUpdate продление премиум-доступа на срок варианта.
type PremiumUpdate struct {
	Variant PremiumVariant
}

func (LanguageUpdate) isUpdateTarget() {}
func (LocationUpdate) isUpdateTarget() {}
func (PremiumUpdate) isUpdateTarget()  {}

// PremiumVariant срок продления премиум-доступа.
type PremiumVariant string

// Поддерживаемые сроки продления.
const (
	PremiumMonth    PremiumVariant = "month"
	PremiumQuarter  PremiumVariant = "quarter"
	PremiumHalfYear PremiumVariant = "half-year"
	PremiumYear     PremiumVariant = "year"
)

// UnknownPremiumVariantError означает, что строка не является известным сроком.
type UnknownPremiumVariantError struct {
	Value string
}

func (e *UnknownPremiumVariantError) Error() string {
	return fmt.Sprintf("unknown premium variant %q", e.Value)
}

// ParsePremiumVariant разбирает строковое значение срока продления.
func ParsePremiumVariant(s string) (PremiumVariant, error) {
	switch PremiumVariant(s) {
	case PremiumMonth, PremiumQuarter, PremiumHalfYear, PremiumYear:
		return PremiumVariant(s), nil
	default:
		return "", &UnknownPremiumVariantError{Value: s}
	}
}

// Months возвращает длительность варианта в месяцах.
func (v PremiumVariant) Months() int {
	switch v {
	case PremiumMonth:
		return 1
	case PremiumQuarter:
		return 3
	case PremiumHalfYear:
		return 6
	case PremiumYear:
		return 12
	}
	return 0
}

// AddTo прибавляет срок варианта к моменту времени.
func (v PremiumVariant) AddTo(t time.Time) time.Time {
	return t.AddDate(0, v.Months(), 0)
}
