package message_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodchat/internal/app/message"
	"moodchat/internal/app/sentiment"
	"moodchat/internal/app/user"
	"moodchat/internal/pkg/errs"
)

type fakeUserDirectory struct {
	users map[uuid.UUID]user.User
}

func (f *fakeUserDirectory) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

type fakeMessageStore struct {
	created []message.Message
	failing bool
}

func (f *fakeMessageStore) Create(_ context.Context, m message.Message) (message.Message, error) {
	if f.failing {
		return message.Message{}, errors.New("connection reset")
	}
	m.ID = uuid.New()
	f.created = append(f.created, m)
	return m, nil
}

func (f *fakeMessageStore) ListWithUsers(_ context.Context) ([]message.WithUser, error) {
	if f.failing {
		return nil, errors.New("connection reset")
	}
	out := []message.WithUser{}
	for _, m := range f.created {
		out = append(out, message.WithUser{Message: m})
	}
	return out, nil
}

type fakeClassifier struct {
	label string
	err   error
	calls int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.label, nil
}

func TestSubmitStoresClassifiedMessage(t *testing.T) {
	author := user.User{ID: uuid.New(), Name: "ayse"}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{author.ID: author}}
	store := &fakeMessageStore{}
	classifier := &fakeClassifier{label: "POSITIVE"}

	svc := message.NewService(users, store, classifier)

	msg, customErr := svc.Submit(context.Background(), author.ID, "what a great day")

	require.Nil(t, customErr)
	assert.Equal(t, "what a great day", msg.Text)
	assert.Equal(t, "POSITIVE", msg.Sentiment)
	assert.Equal(t, author.ID, msg.UserID)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	require.Len(t, store.created, 1)
}

func TestSubmitUnknownUserStoresNothing(t *testing.T) {
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{}}
	store := &fakeMessageStore{}
	classifier := &fakeClassifier{label: "POSITIVE"}

	svc := message.NewService(users, store, classifier)

	_, customErr := svc.Submit(context.Background(), uuid.New(), "hello")

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUserNotFound, customErr.Code)
	assert.Equal(t, http.StatusBadRequest, customErr.Status)
	assert.Empty(t, store.created)
	assert.Zero(t, classifier.calls)
}

func TestSubmitRejectedClassificationStoresNothing(t *testing.T) {
	author := user.User{ID: uuid.New(), Name: "ayse"}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{author.ID: author}}
	store := &fakeMessageStore{}
	classifier := &fakeClassifier{
		err: &sentiment.RemoteError{Status: http.StatusInternalServerError, Body: "model is down"},
	}

	svc := message.NewService(users, store, classifier)

	_, customErr := svc.Submit(context.Background(), author.ID, "hello")

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrSentimentUnavailable, customErr.Code)
	assert.Equal(t, http.StatusBadGateway, customErr.Status)
	assert.Contains(t, customErr.Message, "500")
	assert.Contains(t, customErr.Message, "model is down")
	assert.Empty(t, store.created)
}

func TestSubmitUnexpectedClassifierFailure(t *testing.T) {
	author := user.User{ID: uuid.New(), Name: "ayse"}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{author.ID: author}}
	store := &fakeMessageStore{}
	classifier := &fakeClassifier{err: errors.New("dns lookup failed")}

	svc := message.NewService(users, store, classifier)

	_, customErr := svc.Submit(context.Background(), author.ID, "hello")

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUnknown, customErr.Code)
	assert.Empty(t, store.created)
}

func TestSubmitStorageFailure(t *testing.T) {
	author := user.User{ID: uuid.New(), Name: "ayse"}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{author.ID: author}}
	store := &fakeMessageStore{failing: true}
	classifier := &fakeClassifier{label: "NEUTRAL"}

	svc := message.NewService(users, store, classifier)

	_, customErr := svc.Submit(context.Background(), author.ID, "hello")

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUnknown, customErr.Code)
	assert.Equal(t, http.StatusInternalServerError, customErr.Status)
}

func TestListPassesThroughStoreOrder(t *testing.T) {
	author := user.User{ID: uuid.New(), Name: "ayse"}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{author.ID: author}}
	store := &fakeMessageStore{}
	classifier := &fakeClassifier{label: "NEUTRAL"}

	svc := message.NewService(users, store, classifier)

	for _, text := range []string{"first", "second", "third"} {
		_, customErr := svc.Submit(context.Background(), author.ID, text)
		require.Nil(t, customErr)
	}

	once, customErr := svc.List(context.Background())
	require.Nil(t, customErr)
	twice, customErr := svc.List(context.Background())
	require.Nil(t, customErr)

	require.Len(t, once, 3)
	assert.Equal(t, once, twice)
	assert.Equal(t, "first", once[0].Text)
	assert.Equal(t, "third", once[2].Text)
}
