// Package models содержит доменные типы сервиса идентификации:
// профиль пользователя, значения-типы (код языка, координаты),
// описание внешнего сервиса и цель частичного обновления.
// Структуры используются в бизнес-логике, хранилище и обоих фронтендах.
package models

import "time"

// ExternalUser описывает пользователя так, как его передаёт внешний сервис.
// Никогда не сохраняется в этом виде.
type ExternalUser struct {
	ExternalID int64   `json:"external_id" validate:"required"` // Идентификатор во внешнем сервисе
	Name       *string `json:"name,omitempty"`                  // Имя, если внешний сервис его знает
}

// SavedUser каноничный профиль пользователя, прочитанный из хранилища.
type SavedUser struct {
	ID           int64      `json:"id"`                      // Внутренний стабильный идентификатор
	Name         *string    `json:"name,omitempty"`          // Имя пользователя
	LanguageCode *Code      `json:"language_code,omitempty"` // Двухбуквенный код языка
	Location     *Location  `json:"location,omitempty"`      // Последние известные координаты
	PremiumUntil *time.Time `json:"premium_until,omitempty"` // Окончание премиум-доступа
}

// IsPremium сообщает, действует ли премиум-доступ на текущий момент.
func (u *SavedUser) IsPremium() bool {
	return u.PremiumUntil != nil && !u.PremiumUntil.Before(time.Now())
}

// View строит внешнее представление профиля для ответов фронтендов.
func (u *SavedUser) View() UserView {
	var code *string
	if u.LanguageCode != nil {
		s := u.LanguageCode.String()
		code = &s
	}
	return UserView{
		ID:   u.ID,
		Name: u.Name,
		Options: Options{
			LanguageCode: code,
			Location:     u.Location,
		},
		IsPremium: u.IsPremium(),
	}
}

// UserView представление профиля в JSON-ответах.
type UserView struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name,omitempty"`
	Options   Options `json:"options"`
	IsPremium bool    `json:"is_premium"`
}

// Options необязательные атрибуты профиля.
type Options struct {
	LanguageCode *string   `json:"language_code,omitempty"`
	Location     *Location `json:"location,omitempty"`
}

// UserID идентификатор пользователя: внутренний либо внешний.
type UserID struct {
	id       int64
	external bool
}

// InternalID создаёт идентификатор по внутреннему id профиля.
func InternalID(id int64) UserID { return UserID{id: id} }

// ExternalID создаёт идентификатор по внешнему id из стороннего сервиса.
func ExternalID(id int64) UserID { return UserID{id: id, external: true} }

// Value возвращает числовое значение идентификатора.
func (u UserID) Value() int64 { return u.id }

// IsExternal сообщает, внешний ли это идентификатор.
func (u UserID) IsExternal() bool { return u.external }
