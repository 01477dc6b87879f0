/*
Package handler provides the HTTP handlers and routing setup for the chat backend.

This file contains the handlers for message submission and listing.
*/
package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"moodchat/internal/pkg/errs"
	"moodchat/internal/pkg/req"
	"moodchat/internal/pkg/resp"
)

// MaxMessageLength caps the message text length in runes.
const MaxMessageLength = 2000

type SendMessageInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Text   string    `json:"text" validate:"required"`
}

// HandleSendMessage processes a message submission. The message is stored with
// the sentiment label the classifier assigned; a rejected classification job
// surfaces as a 502 and nothing is stored.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if strings.TrimSpace(input.Text) == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidMessageText))
			return
		}

		if utf8.RuneCountInString(input.Text) > MaxMessageLength {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageTextTooLong))
			return
		}

		msg, customErr := deps.Messages.Submit(r.Context(), input.UserID, input.Text)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, msg)
	}
}

// HandleListMessages returns all messages, each joined with its author.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, customErr := deps.Messages.List(r.Context())
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, messages)
	}
}
