// Package client предоставляет обертку над gRPC-клиентом сервиса идентификации.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	userpb "github.com/sadfav/user-identity-service/internal/grpc/gen"
)

// UserClient обертка над gRPC-клиентом сервиса профилей.
type UserClient struct {
	conn   *grpc.ClientConn
	client userpb.UserServiceClient
}

// NewUserClient подключается к сервису профилей по указанному адресу.
func NewUserClient(addr string) (*UserClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &UserClient{conn: conn, client: userpb.NewUserServiceClient(conn)}, nil
}

// NewUserClientWithConn оборачивает уже установленное соединение.
func NewUserClientWithConn(conn *grpc.ClientConn) *UserClient {
	return &UserClient{conn: conn, client: userpb.NewUserServiceClient(conn)}
}

// Close закрывает соединение с сервисом.
func (c *UserClient) Close() error {
	return c.conn.Close()
}

// GetUser возвращает профиль по внутреннему идентификатору.
func (c *UserClient) GetUser(ctx context.Context, id int64) (*userpb.GetUserResponse, error) {
	return c.client.GetUser(ctx, &userpb.GetUserRequest{Id: id})
}

// GetUserByExternalID возвращает профиль по внешнему идентификатору.
func (c *UserClient) GetUserByExternalID(ctx context.Context, externalID int64) (*userpb.GetUserResponse, error) {
	return c.client.GetUser(ctx, &userpb.GetUserRequest{
		Id:           externalID,
		ByExternalId: true,
	})
}

// Register регистрирует внешнего пользователя.
func (c *UserClient) Register(ctx context.Context, user *userpb.ExternalUser, service *userpb.Service, consent *structpb.Struct) (*userpb.RegistrationResponse, error) {
	return c.client.Register(ctx, &userpb.RegistrationRequest{
		User:        user,
		Service:     service,
		ConsentInfo: consent,
	})
}

// UpdateLanguage меняет код языка пользователя.
func (c *UserClient) UpdateLanguage(ctx context.Context, id int64, code string) error {
	_, err := c.client.UpdateUser(ctx, &userpb.UpdateUserRequest{
		Id:     id,
		Target: &userpb.UpdateUserRequest_Language{Language: code},
	})
	return err
}

// UpdateLocation меняет координаты пользователя.
func (c *UserClient) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	_, err := c.client.UpdateUser(ctx, &userpb.UpdateUserRequest{
		Id: id,
		Target: &userpb.UpdateUserRequest_Location{Location: &userpb.Location{
			Latitude:  latitude,
			Longitude: longitude,
		}},
	})
	return err
}

// ActivatePremium продлевает премиум-доступ пользователя.
func (c *UserClient) ActivatePremium(ctx context.Context, id int64, variant userpb.PremiumVariant) (*userpb.ActivatePremiumResponse, error) {
	return c.client.ActivatePremium(ctx, &userpb.ActivatePremiumRequest{
		Id:      id,
		Variant: variant,
	})
}
