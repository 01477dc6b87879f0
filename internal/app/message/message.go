/*
Package message contains the chat message model, its Postgres-backed store, and
the submission service that orchestrates author validation, sentiment
classification, and persistence.
*/
package message

import (
	"time"

	"github.com/google/uuid"

	"moodchat/internal/app/user"
)

// Message is a chat message annotated with the sentiment label it was
// assigned at submission time. Messages are immutable once stored.
type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithUser is a Message joined with its author, as served by the listing endpoint.
type WithUser struct {
	Message
	User user.User `json:"user"`
}
