// Package server реализует gRPC-сервер сервиса идентификации пользователей.
//
// UserServer обрабатывает запросы чтения профиля, регистрации, частичного
// обновления и активации премиум-доступа. Логирует операции и ошибки,
// делегирует бизнес-логику общему сервису профилей, поэтому семантика
// совпадает с REST-фронтендом.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	userpb "github.com/sadfav/user-identity-service/internal/grpc/gen"
	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// UserService описывает интерфейс бизнес-логики профилей.
type UserService interface {
	Resolve(ctx context.Context, id models.UserID) (*models.SavedUser, error)
	Register(ctx context.Context, user models.ExternalUser, service models.Service, consent json.RawMessage) (models.RegistrationResult, error)
	ApplyUpdate(ctx context.Context, userID int64, target models.UpdateTarget) error
	ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error)
}

// UserServer реализует gRPC-сервис профилей пользователей.
type UserServer struct {
	userpb.UnimplementedUserServiceServer
	service UserService
	log     *slog.Logger
}

// NewUserServer создает новый экземпляр UserServer с указанным сервисом профилей и логгером.
func NewUserServer(service UserService, logger *slog.Logger) *UserServer {
	return &UserServer{
		service: service,
		log:     logger,
	}
}

// GetUser возвращает профиль по внутреннему или внешнему идентификатору.
func (s *UserServer) GetUser(ctx context.Context, req *userpb.GetUserRequest) (*userpb.GetUserResponse, error) {
	s.log.Info("GetUser request",
		slog.Int64("id", req.Id),
		slog.Bool("by_external_id", req.ByExternalId))

	id := models.InternalID(req.Id)
	if req.ByExternalId {
		id = models.ExternalID(req.Id)
	}

	user, err := s.service.Resolve(ctx, id)
	if err != nil {
		s.log.Error("GetUser failed", slog.Int64("id", req.Id), slog.Any("error", err))
		return nil, status.Error(codes.Internal, "could not resolve user")
	}
	if user == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}

	return &userpb.GetUserResponse{User: userToProto(user)}, nil
}

// Register регистрирует внешнего пользователя либо возвращает существующий профиль.
func (s *UserServer) Register(ctx context.Context, req *userpb.RegistrationRequest) (*userpb.RegistrationResponse, error) {
	if req.GetUser() == nil || req.GetService() == nil {
		return nil, status.Error(codes.InvalidArgument, "user and service are required")
	}
	s.log.Info("Register request",
		slog.Int64("external_id", req.GetUser().GetExternalId()),
		slog.String("service", req.GetService().GetName()))

	kind, ok := serviceTypeFromProto(req.GetService().GetKind())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "unknown service type")
	}

	user := models.ExternalUser{ExternalID: req.GetUser().GetExternalId()}
	if name := req.GetUser().GetName(); name != "" {
		user.Name = &name
	}

	var consent json.RawMessage
	if req.GetConsentInfo() != nil {
		raw, err := req.GetConsentInfo().MarshalJSON()
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid consent info")
		}
		consent = raw
	}

	res, err := s.service.Register(ctx, user, models.Service{
		Name: req.GetService().GetName(),
		Type: kind,
	}, consent)
	if err != nil {
		s.log.Error("Register failed",
			slog.Int64("external_id", req.GetUser().GetExternalId()),
			slog.Any("error", err))
		return nil, status.Error(codes.Internal, "could not register user")
	}

	return &userpb.RegistrationResponse{
		Status: registrationStatusToProto(res.Status),
		Id:     res.ID,
	}, nil
}

// UpdateUser применяет обновление одного поля профиля.
func (s *UserServer) UpdateUser(ctx context.Context, req *userpb.UpdateUserRequest) (*userpb.UpdateUserResponse, error) {
	s.log.Info("UpdateUser request", slog.Int64("id", req.Id))

	var target models.UpdateTarget
	switch t := req.GetTarget().(type) {
	case *userpb.UpdateUserRequest_Language:
		code, err := models.ParseCode(t.Language)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "language code must be two letters")
		}
		target = models.LanguageUpdate{Code: code}
	case *userpb.UpdateUserRequest_Location:
		if t.Location == nil {
			return nil, status.Error(codes.InvalidArgument, "location is required")
		}
		target = models.LocationUpdate{
			Latitude:  t.Location.GetLatitude(),
			Longitude: t.Location.GetLongitude(),
		}
	case *userpb.UpdateUserRequest_PremiumVariant:
		variant, ok := premiumVariantFromProto(t.PremiumVariant)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "unknown premium variant")
		}
		target = models.PremiumUpdate{Variant: variant}
	default:
		return nil, status.Error(codes.InvalidArgument, "update target is required")
	}

	err := s.service.ApplyUpdate(ctx, req.Id, target)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		s.log.Error("UpdateUser failed", slog.Int64("id", req.Id), slog.Any("error", err))
		return nil, status.Error(codes.Internal, "could not update user")
	}

	return &userpb.UpdateUserResponse{}, nil
}

// ActivatePremium продлевает премиум-доступ пользователя.
func (s *UserServer) ActivatePremium(ctx context.Context, req *userpb.ActivatePremiumRequest) (*userpb.ActivatePremiumResponse, error) {
	s.log.Info("ActivatePremium request", slog.Int64("id", req.Id))

	variant, ok := premiumVariantFromProto(req.Variant)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "unknown premium variant")
	}

	until, err := s.service.ActivatePremium(ctx, req.Id, variant)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		s.log.Error("ActivatePremium failed", slog.Int64("id", req.Id), slog.Any("error", err))
		return nil, status.Error(codes.Internal, "could not activate premium")
	}

	return &userpb.ActivatePremiumResponse{
		ActiveUntil: timestamppb.New(until),
	}, nil
}
