package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/internal/testutil/memstore"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type recordingNotifier struct {
	got []*contact.Message
	err error
}

func (n *recordingNotifier) ContactReceived(_ context.Context, m *contact.Message) error {
	n.got = append(n.got, m)
	return n.err
}

func validValues() map[string]string {
	return map[string]string{"name": "Jane", "email": "jane@x.com", "subject": "Hi", "message": "Hello"}
}

func TestSubmitContact_PersistsUnreadMessage(t *testing.T) {
	store := memstore.New()
	notifier := &recordingNotifier{}
	uc := NewSubmitContactUseCase(store.Contact(), notifier, logger.NewNop())
	ctx := context.Background()

	out, err := uc.Execute(ctx, SubmitContactInput{Values: validValues()})
	require.NoError(t, err)
	assert.Equal(t, "Jane", out.Message.Name)
	assert.False(t, out.Message.Read)

	n, err := store.Contact().Count(ctx, contact.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	saved, err := store.Contact().FindByID(ctx, out.Message.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", saved.Email)
	assert.Equal(t, "Hi", saved.Subject)
	assert.Equal(t, "Hello", saved.Body)
	assert.False(t, saved.Read)

	require.Len(t, notifier.got, 1)
	assert.Equal(t, out.Message.ID, notifier.got[0].ID)
}

func TestSubmitContact_TrimsValues(t *testing.T) {
	store := memstore.New()
	uc := NewSubmitContactUseCase(store.Contact(), nil, logger.NewNop())

	values := validValues()
	values["name"] = "  Jane  "
	out, err := uc.Execute(context.Background(), SubmitContactInput{Values: values})
	require.NoError(t, err)
	assert.Equal(t, "Jane", out.Message.Name)
}

func TestSubmitContact_InvalidEmailPersistsNothing(t *testing.T) {
	store := memstore.New()
	notifier := &recordingNotifier{}
	uc := NewSubmitContactUseCase(store.Contact(), notifier, logger.NewNop())
	ctx := context.Background()

	values := validValues()
	values["email"] = "not-an-email"
	_, err := uc.Execute(ctx, SubmitContactInput{Values: values})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	fields, ok := apperror.FieldErrorsOf(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, fields.Fields())

	n, err := store.Contact().Count(ctx, contact.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, notifier.got)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	uc := NewSubmitContactUseCase(memstore.New().Contact(), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), SubmitContactInput{Values: map[string]string{"name": "   "}})
	fields, ok := apperror.FieldErrorsOf(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "message", "name", "subject"}, fields.Fields())
}

func TestSubmitContact_NotifierFailureIsNotFatal(t *testing.T) {
	store := memstore.New()
	uc := NewSubmitContactUseCase(store.Contact(), &recordingNotifier{err: errors.New("broker down")}, logger.NewNop())

	out, err := uc.Execute(context.Background(), SubmitContactInput{Values: validValues()})
	require.NoError(t, err)
	_, err = store.Contact().FindByID(context.Background(), out.Message.ID)
	assert.NoError(t, err)
}

func seedMessages(t *testing.T, repo contact.Repository, n int) []*contact.Message {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*contact.Message, 0, n)
	for i := 0; i < n; i++ {
		m := &contact.Message{ID: uuid.New(), Name: "n", Email: "e@x.com", Subject: "s", Body: "b", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Save(context.Background(), m))
		out = append(out, m)
	}
	return out
}

func TestAdmin_ListNewestFirstAndFilter(t *testing.T) {
	store := memstore.New()
	msgs := seedMessages(t, store.Contact(), 25)
	uc := NewAdminUseCase(store.Contact(), logger.NewNop())
	ctx := context.Background()

	out, err := uc.List(ctx, ListInput{Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Messages, AdminPageSize)
	assert.Equal(t, msgs[24].ID, out.Messages[0].ID)
	assert.Equal(t, 2, out.Page.TotalPages)

	n, err := uc.MarkRead(ctx, []uuid.UUID{msgs[0].ID, msgs[1].ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	read := true
	out, err = uc.List(ctx, ListInput{Read: &read, Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Messages, 2)

	n, err = uc.MarkUnread(ctx, []uuid.UUID{msgs[0].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	unread := false
	out, err = uc.List(ctx, ListInput{Read: &unread, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 24, out.Page.TotalCount)
}

func TestAdmin_MarkReadRequiresIDs(t *testing.T) {
	uc := NewAdminUseCase(memstore.New().Contact(), logger.NewNop())
	_, err := uc.MarkRead(context.Background(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestAdmin_Delete(t *testing.T) {
	store := memstore.New()
	msgs := seedMessages(t, store.Contact(), 1)
	uc := NewAdminUseCase(store.Contact(), logger.NewNop())
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, msgs[0].ID))
	_, err := uc.Get(ctx, msgs[0].ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, msgs[0].ID), apperror.ErrNotFound)
}
