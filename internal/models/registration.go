package models

// RegistrationStatus итог регистрации внешнего пользователя.
type RegistrationStatus string

const (
	// RegistrationCreated создан новый профиль.
	RegistrationCreated RegistrationStatus = "created"
	// RegistrationAlreadyPresent сопоставление уже существовало.
	RegistrationAlreadyPresent RegistrationStatus = "already_present"
)

// RegistrationResult статус регистрации и внутренний id профиля.
// Повторная регистрация той же пары (сервис, внешний id) возвращает
// already_present с тем же id.
type RegistrationResult struct {
	Status RegistrationStatus `json:"status"`
	ID     int64              `json:"id"`
}
