package handler

import (
	"context"

	"github.com/google/uuid"

	"moodchat/internal/app/message"
	"moodchat/internal/app/user"
	"moodchat/internal/configs"
	"moodchat/internal/pkg/errs"
)

// UserStore is the slice of the user store the handlers need.
type UserStore interface {
	Create(ctx context.Context, name string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
}

// MessageService is the slice of the message service the handlers need.
type MessageService interface {
	Submit(ctx context.Context, userID uuid.UUID, text string) (message.Message, *errs.CustomError)
	List(ctx context.Context) ([]message.WithUser, *errs.CustomError)
}

// AppDeps bundles the dependencies shared by all HTTP handlers.
type AppDeps struct {
	Config   *configs.AppConfig
	Users    UserStore
	Messages MessageService
}
