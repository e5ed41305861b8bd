package models

import "fmt"

// ServiceType тип внешнего сервиса, через который приходит пользователь.
type ServiceType string

// Поддерживаемые типы внешних сервисов.
const (
	ServiceTypeTelegramBot     ServiceType = "telegram-bot"
	ServiceTypeTelegramChannel ServiceType = "telegram-channel"
	ServiceTypeWebsite         ServiceType = "website"
	ServiceTypeApplication     ServiceType = "application"
)

// UnknownServiceTypeError означает, что строка не является известным типом сервиса.
type UnknownServiceTypeError struct {
	Value string
}

func (e *UnknownServiceTypeError) Error() string {
	return fmt.Sprintf("unknown service type %q", e.Value)
}

// ParseServiceType разбирает строковое значение типа сервиса.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceTypeTelegramBot, ServiceTypeTelegramChannel, ServiceTypeWebsite, ServiceTypeApplication:
		return ServiceType(s), nil
	default:
		return "", &UnknownServiceTypeError{Value: s}
	}
}

// Service внешний сервис. Идентичность задаётся парой (имя, тип);
// долговременный числовой id выдаётся хранилищем при первом создании.
type Service struct {
	Name string      `json:"name" validate:"required"`
	Type ServiceType `json:"type" validate:"required"`
}
