package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akulagin/itemshare/internal/clock"
	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports/mocks"
)

type itemFixture struct {
	items    *mocks.MockItemRepo
	users    *mocks.MockUserRepo
	bookings *mocks.MockBookingStore
	comments *mocks.MockCommentRepo
	requests *mocks.MockRequestRepo
	now      time.Time
	svc      *ItemService
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	f := &itemFixture{
		items:    mocks.NewMockItemRepo(t),
		users:    mocks.NewMockUserRepo(t),
		bookings: mocks.NewMockBookingStore(t),
		comments: mocks.NewMockCommentRepo(t),
		requests: mocks.NewMockRequestRepo(t),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewItemService(
		f.items, f.users, f.bookings, f.comments, f.requests,
		clock.Fixed{Instant: f.now}, newTestLogger(t),
	)
	return f
}

func TestItemService_Create(t *testing.T) {
	f := newItemFixture(t)

	f.users.EXPECT().GetByID(mock.Anything, "owner").Return(&domain.User{ID: "owner"}, nil)
	f.items.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	item, err := f.svc.Create(context.Background(), "owner", domain.CreateItemInput{
		Name:        "Drill",
		Description: "Cordless",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner", item.OwnerID)
	assert.True(t, item.Available, "available defaults to true")
	assert.NotEmpty(t, item.ID)
}

func TestItemService_Create_AnswersRequest(t *testing.T) {
	f := newItemFixture(t)
	reqID := "r1"

	f.users.EXPECT().GetByID(mock.Anything, "owner").Return(&domain.User{ID: "owner"}, nil)
	f.requests.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.ItemRequest{ID: "r1"}, nil)
	f.items.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	item, err := f.svc.Create(context.Background(), "owner", domain.CreateItemInput{
		Name:      "Drill",
		RequestID: &reqID,
	})

	require.NoError(t, err)
	require.NotNil(t, item.RequestID)
	assert.Equal(t, "r1", *item.RequestID)
}

func TestItemService_Create_UnknownRequest(t *testing.T) {
	f := newItemFixture(t)
	reqID := "ghost"

	f.users.EXPECT().GetByID(mock.Anything, "owner").Return(&domain.User{ID: "owner"}, nil)
	f.requests.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.NewMissing("request not found"))

	_, err := f.svc.Create(context.Background(), "owner", domain.CreateItemInput{
		Name:      "Drill",
		RequestID: &reqID,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_Create_MissingName(t *testing.T) {
	f := newItemFixture(t)

	_, err := f.svc.Create(context.Background(), "owner", domain.CreateItemInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Create_UnknownOwner(t *testing.T) {
	f := newItemFixture(t)

	f.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.NewMissing("user not found"))

	_, err := f.svc.Create(context.Background(), "ghost", domain.CreateItemInput{Name: "Drill"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_Update_Partial(t *testing.T) {
	f := newItemFixture(t)

	existing := &domain.Item{
		ID: "i1", OwnerID: "owner",
		Name: "Drill", Description: "Cordless", Available: true,
	}
	newName := "Hammer drill"
	unavailable := false

	f.items.EXPECT().GetByIDForOwner(mock.Anything, "i1", "owner").Return(existing, nil)
	f.items.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	item, err := f.svc.Update(context.Background(), "owner", "i1", domain.UpdateItemInput{
		Name:      &newName,
		Available: &unavailable,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", item.Name)
	assert.Equal(t, "Cordless", item.Description, "untouched field keeps its value")
	assert.False(t, item.Available)
	assert.Equal(t, f.now, item.UpdatedAt)
}

func TestItemService_Update_NotOwner(t *testing.T) {
	f := newItemFixture(t)

	f.items.EXPECT().GetByIDForOwner(mock.Anything, "i1", "stranger").
		Return(nil, domain.NewNotVisible("item i1 is not visible"))

	_, err := f.svc.Update(context.Background(), "stranger", "i1", domain.UpdateItemInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_GetByID_OwnerSeesBookings(t *testing.T) {
	f := newItemFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Name: "Drill"}
	bookings := []*domain.Booking{
		approvedAt("done", f.now.Add(-48*time.Hour), f.now.Add(-24*time.Hour)),
		approvedAt("soon", f.now.Add(24*time.Hour), f.now.Add(48*time.Hour)),
	}

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.comments.EXPECT().ListByItem(mock.Anything, "i1").Return(nil, nil)
	f.bookings.EXPECT().ListByItemForOwner(mock.Anything, "i1", "owner").Return(bookings, nil)

	details, err := f.svc.GetByID(context.Background(), "i1", "owner")

	require.NoError(t, err)
	require.NotNil(t, details.LastBooking)
	require.NotNil(t, details.NextBooking)
	assert.Equal(t, "done", details.LastBooking.ID)
	assert.Equal(t, "soon", details.NextBooking.ID)
}

func TestItemService_GetByID_OtherViewerSeesNoBookings(t *testing.T) {
	f := newItemFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner", Name: "Drill"}
	comments := []*domain.Comment{{ID: "c1", ItemID: "i1", Text: "worked great"}}

	f.users.EXPECT().Exists(mock.Anything, "viewer").Return(true, nil)
	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.comments.EXPECT().ListByItem(mock.Anything, "i1").Return(comments, nil)

	details, err := f.svc.GetByID(context.Background(), "i1", "viewer")

	require.NoError(t, err)
	assert.Nil(t, details.LastBooking)
	assert.Nil(t, details.NextBooking)
	require.Len(t, details.Comments, 1)
	assert.Equal(t, "worked great", details.Comments[0].Text)
}

func TestItemService_GetByID_UnknownViewer(t *testing.T) {
	f := newItemFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "ghost").Return(false, nil)

	_, err := f.svc.GetByID(context.Background(), "i1", "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_ListByOwner_ProjectsPerItem(t *testing.T) {
	f := newItemFixture(t)

	items := []*domain.Item{
		{ID: "i1", OwnerID: "owner", Name: "Drill"},
		{ID: "i2", OwnerID: "owner", Name: "Ladder"},
	}
	b1 := approvedAt("b1", f.now.Add(-48*time.Hour), f.now.Add(-24*time.Hour))
	b2 := approvedAt("b2", f.now.Add(24*time.Hour), f.now.Add(48*time.Hour))
	b2.ItemID = "i2"

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.items.EXPECT().ListByOwner(mock.Anything, "owner").Return(items, nil)
	f.bookings.EXPECT().ListApprovedByOwner(mock.Anything, "owner").Return([]*domain.Booking{b1, b2}, nil)
	f.comments.EXPECT().ListByItems(mock.Anything, []string{"i1", "i2"}).Return(nil, nil)

	details, err := f.svc.ListByOwner(context.Background(), "owner")

	require.NoError(t, err)
	require.Len(t, details, 2)

	require.NotNil(t, details[0].LastBooking)
	assert.Equal(t, "b1", details[0].LastBooking.ID)
	assert.Nil(t, details[0].NextBooking)

	assert.Nil(t, details[1].LastBooking)
	require.NotNil(t, details[1].NextBooking)
	assert.Equal(t, "b2", details[1].NextBooking.ID)
}

func TestItemService_ListByOwner_NoItems(t *testing.T) {
	f := newItemFixture(t)

	f.users.EXPECT().Exists(mock.Anything, "owner").Return(true, nil)
	f.items.EXPECT().ListByOwner(mock.Anything, "owner").Return(nil, nil)

	details, err := f.svc.ListByOwner(context.Background(), "owner")

	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestItemService_Search_BlankText(t *testing.T) {
	f := newItemFixture(t)

	items, err := f.svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_Search(t *testing.T) {
	f := newItemFixture(t)

	found := []*domain.Item{{ID: "i1", Name: "Drill"}}
	f.items.EXPECT().Search(mock.Anything, "drill").Return(found, nil)

	items, err := f.svc.Search(context.Background(), "drill")

	require.NoError(t, err)
	assert.Equal(t, found, items)
}

func TestItemService_AddComment(t *testing.T) {
	f := newItemFixture(t)

	item := &domain.Item{ID: "i1", OwnerID: "owner"}
	author := &domain.User{ID: "booker", Name: "Bob"}

	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	f.users.EXPECT().GetByID(mock.Anything, "booker").Return(author, nil)
	f.bookings.EXPECT().HasCompletedBooking(mock.Anything, "i1", "booker", f.now).Return(true, nil)
	f.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	comment, err := f.svc.AddComment(context.Background(), "booker", "i1", "worked great")

	require.NoError(t, err)
	assert.Equal(t, "Bob", comment.AuthorName)
	assert.Equal(t, "worked great", comment.Text)
	assert.Equal(t, f.now, comment.CreatedAt)
}

func TestItemService_AddComment_NoCompletedBooking(t *testing.T) {
	f := newItemFixture(t)

	f.items.EXPECT().GetByID(mock.Anything, "i1").Return(&domain.Item{ID: "i1"}, nil)
	f.users.EXPECT().GetByID(mock.Anything, "booker").Return(&domain.User{ID: "booker"}, nil)
	f.bookings.EXPECT().HasCompletedBooking(mock.Anything, "i1", "booker", f.now).Return(false, nil)

	_, err := f.svc.AddComment(context.Background(), "booker", "i1", "nice")

	assert.ErrorIs(t, err, domain.ErrCommentNotAllowed)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_AddComment_EmptyText(t *testing.T) {
	f := newItemFixture(t)

	_, err := f.svc.AddComment(context.Background(), "booker", "i1", "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
