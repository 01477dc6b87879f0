/*
Package handler provides the HTTP handlers and routing setup for the chat backend.

This file contains the handlers for user registration and listing.
*/
package handler

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"moodchat/internal/app/user"
	"moodchat/internal/pkg/errs"
	"moodchat/internal/pkg/logx"
	"moodchat/internal/pkg/req"
	"moodchat/internal/pkg/resp"
)

// MaxUsernameLength caps the display name length in runes.
const MaxUsernameLength = 32

type CreateUserInput struct {
	Name string `json:"name" validate:"required"`
}

// HandleCreateUser processes the request to register a new user with a unique
// display name.
func HandleCreateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateUserInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		name := strings.TrimSpace(input.Name)
		if name == "" || utf8.RuneCountInString(name) > MaxUsernameLength {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUsername))
			return
		}

		created, err := deps.Users.Create(r.Context(), name)
		if err != nil {
			if errors.Is(err, user.ErrNameTaken) {
				logx.Warn("registration conflict: username already exists", "name", name)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNameTaken))
				return
			}

			logx.Error(err, "failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondCreated(w, r, created)
	}
}

// HandleListUsers returns all registered users.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Users.List(r.Context())
		if err != nil {
			logx.Error(err, "failed to list users")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, users)
	}
}
