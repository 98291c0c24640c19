package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akulagin/itemshare/internal/clock"
	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports/mocks"
)

type requestFixture struct {
	requests *mocks.MockRequestRepo
	items    *mocks.MockItemRepo
	users    *mocks.MockUserRepo
	now      time.Time
	svc      *RequestService
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	f := &requestFixture{
		requests: mocks.NewMockRequestRepo(t),
		items:    mocks.NewMockItemRepo(t),
		users:    mocks.NewMockUserRepo(t),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewRequestService(
		f.requests, f.items, f.users,
		clock.Fixed{Instant: f.now}, newTestLogger(t),
	)
	return f
}

func requestAt(id, requestorID string, created time.Time) *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          id,
		RequestorID: requestorID,
		Description: "need a thing",
		CreatedAt:   created,
	}
}

func TestRequestService_Create(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.requests.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	req, err := f.svc.Create(context.Background(), "u1", "need a cordless drill")

	require.NoError(t, err)
	assert.Equal(t, "u1", req.RequestorID)
	assert.Equal(t, "need a cordless drill", req.Description)
	assert.Equal(t, f.now, req.CreatedAt)
	assert.NotEmpty(t, req.ID)
}

func TestRequestService_Create_BlankDescription(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.Create(context.Background(), "u1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_UnknownRequestor(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.NewMissing("user not found"))

	_, err := f.svc.Create(context.Background(), "ghost", "need a drill")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_ListOwn_AttachesAnswers(t *testing.T) {
	f := newRequestFixture(t)

	r1 := requestAt("r1", "u1", f.now.Add(-time.Hour))
	r2 := requestAt("r2", "u1", f.now.Add(-2*time.Hour))
	answer := "r1"

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().ListByRequestor(mock.Anything, "u1").Return([]*domain.ItemRequest{r1, r2}, nil)
	f.items.EXPECT().ListByRequestIDs(mock.Anything, []string{"r1", "r2"}).
		Return([]*domain.Item{{ID: "i1", Name: "Drill", RequestID: &answer}}, nil)

	details, err := f.svc.ListOwn(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Len(t, details[0].Items, 1)
	assert.Equal(t, "i1", details[0].Items[0].ID)
	assert.Empty(t, details[1].Items)
}

func TestRequestService_ListOwn_NoRequests(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().ListByRequestor(mock.Anything, "u1").Return(nil, nil)

	details, err := f.svc.ListOwn(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestRequestService_ListOthers(t *testing.T) {
	f := newRequestFixture(t)

	other := requestAt("r9", "u2", f.now.Add(-time.Hour))

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().ListByOthers(mock.Anything, "u1").Return([]*domain.ItemRequest{other}, nil)
	f.items.EXPECT().ListByRequestIDs(mock.Anything, []string{"r9"}).Return(nil, nil)

	details, err := f.svc.ListOthers(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "u2", details[0].Request.RequestorID)
	assert.Empty(t, details[0].Items)
}

func TestRequestService_ListOthers_UnknownUser(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "ghost").Return(false, nil)

	_, err := f.svc.ListOthers(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_GetByID(t *testing.T) {
	f := newRequestFixture(t)

	req := requestAt("r1", "u2", f.now.Add(-time.Hour))
	answer := "r1"

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	f.items.EXPECT().ListByRequestIDs(mock.Anything, []string{"r1"}).
		Return([]*domain.Item{{ID: "i1", RequestID: &answer}}, nil)

	details, err := f.svc.GetByID(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "r1", details.Request.ID)
	require.Len(t, details.Items, 1)
	assert.Equal(t, "i1", details.Items[0].ID)
}

func TestRequestService_GetByID_NotFound(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.NewMissing("request not found"))

	_, err := f.svc.GetByID(context.Background(), "ghost", "u1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_ListOwn_RepoError(t *testing.T) {
	f := newRequestFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "u1").Return(true, nil)
	f.requests.EXPECT().ListByRequestor(mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := f.svc.ListOwn(context.Background(), "u1")

	assert.Error(t, err)
}
