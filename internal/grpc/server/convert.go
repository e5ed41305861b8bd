package server

import (
	userpb "github.com/sadfav/user-identity-service/internal/grpc/gen"
	"github.com/sadfav/user-identity-service/internal/models"
)

// serviceTypeFromProto переводит значение enum в доменный тип сервиса.
func serviceTypeFromProto(t userpb.ServiceType) (models.ServiceType, bool) {
	switch t {
	case userpb.ServiceType_SERVICE_TYPE_TELEGRAM_BOT:
		return models.ServiceTypeTelegramBot, true
	case userpb.ServiceType_SERVICE_TYPE_TELEGRAM_CHANNEL:
		return models.ServiceTypeTelegramChannel, true
	case userpb.ServiceType_SERVICE_TYPE_WEBSITE:
		return models.ServiceTypeWebsite, true
	case userpb.ServiceType_SERVICE_TYPE_APPLICATION:
		return models.ServiceTypeApplication, true
	default:
		return "", false
	}
}

// premiumVariantFromProto переводит значение enum в доменный вариант подписки.
func premiumVariantFromProto(v userpb.PremiumVariant) (models.PremiumVariant, bool) {
	switch v {
	case userpb.PremiumVariant_PREMIUM_VARIANT_MONTH:
		return models.PremiumMonth, true
	case userpb.PremiumVariant_PREMIUM_VARIANT_QUARTER:
		return models.PremiumQuarter, true
	case userpb.PremiumVariant_PREMIUM_VARIANT_HALF_YEAR:
		return models.PremiumHalfYear, true
	case userpb.PremiumVariant_PREMIUM_VARIANT_YEAR:
		return models.PremiumYear, true
	default:
		return "", false
	}
}

// registrationStatusToProto переводит доменный статус регистрации в enum ответа.
func registrationStatusToProto(s models.RegistrationStatus) userpb.RegistrationStatus {
	switch s {
	case models.RegistrationCreated:
		return userpb.RegistrationStatus_REGISTRATION_STATUS_CREATED
	case models.RegistrationAlreadyPresent:
		return userpb.RegistrationStatus_REGISTRATION_STATUS_ALREADY_PRESENT
	default:
		return userpb.RegistrationStatus_REGISTRATION_STATUS_UNSPECIFIED
	}
}

// userToProto собирает сообщение профиля из публичного представления.
func userToProto(u *models.SavedUser) *userpb.User {
	view := u.View()

	out := &userpb.User{
		Id:        view.ID,
		IsPremium: view.IsPremium,
		Options:   &userpb.Options{},
	}
	if view.Name != nil {
		out.Name = *view.Name
	}
	if view.Options.LanguageCode != nil {
		out.Options.LanguageCode = *view.Options.LanguageCode
	}
	if view.Options.Location != nil {
		out.Options.Location = &userpb.Location{
			Latitude:  view.Options.Location.Latitude,
			Longitude: view.Options.Location.Longitude,
		}
	}
	return out
}
