package message

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"moodchat/internal/app/sentiment"
	"moodchat/internal/app/user"
	"moodchat/internal/pkg/errs"
	"moodchat/internal/pkg/logx"
)

// Classifier produces a sentiment label for a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// UserDirectory resolves message authors by id.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

// MessageStore persists and lists messages.
type MessageStore interface {
	Create(ctx context.Context, m Message) (Message, error)
	ListWithUsers(ctx context.Context) ([]WithUser, error)
}

// Service orchestrates message submission: the author must exist, the text is
// classified, and only then is the message stored. Classification happens
// before the insert so every stored message carries its label.
type Service struct {
	users      UserDirectory
	messages   MessageStore
	classifier Classifier
	logger     zerolog.Logger
}

// NewService constructs a Service from its collaborators.
func NewService(users UserDirectory, messages MessageStore, classifier Classifier) *Service {
	serviceLogger := logx.Logger().With().Str("component", "MessageService").Logger()

	return &Service{
		users:      users,
		messages:   messages,
		classifier: classifier,
		logger:     serviceLogger,
	}
}

// Submit validates the author, classifies the text, and stores the message.
//
// An unknown author fails with ErrUserNotFound. A rejected classification
// submission fails with ErrSentimentUnavailable carrying the upstream status
// and body; nothing is stored in either case. Any degraded classification
// outcome is already folded into the label by the Classifier and does not
// block storage.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, text string) (Message, *errs.CustomError) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Message{}, errs.NewError(errs.ErrUserNotFound)
		}

		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load message author")
		return Message{}, errs.NewError(errs.ErrUnknown)
	}

	label, err := s.classifier.Classify(ctx, text)
	if err != nil {
		var remoteErr *sentiment.RemoteError
		if errors.As(err, &remoteErr) {
			s.logger.Warn().
				Int("upstream_status", remoteErr.Status).
				Msg("Sentiment submission rejected by upstream")
			return Message{}, errs.NewError(errs.ErrSentimentUnavailable, remoteErr.Status, remoteErr.Body)
		}

		s.logger.Error().Err(err).Msg("Sentiment classification failed")
		return Message{}, errs.NewError(errs.ErrUnknown)
	}

	msg, err := s.messages.Create(ctx, Message{
		UserID:    userID,
		Text:      text,
		Sentiment: label,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to store message")
		return Message{}, errs.NewError(errs.ErrUnknown)
	}

	return msg, nil
}

// List returns all messages joined with their authors.
func (s *Service) List(ctx context.Context) ([]WithUser, *errs.CustomError) {
	messages, err := s.messages.ListWithUsers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list messages")
		return nil, errs.NewError(errs.ErrUnknown)
	}

	return messages, nil
}
