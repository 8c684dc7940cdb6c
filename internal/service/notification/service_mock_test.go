package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CountUnreadFunc         func(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteFunc              func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	DeleteReadOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int, offset int) ([]domain.Notification, error)
	MarkAllReadFunc         func(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkReadFunc            func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		CountUnread []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		DeleteReadOlderThan []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		ListByUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			UnreadOnly bool
			Limit      int
			Offset     int
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCountUnread         sync.RWMutex
	lockDelete              sync.RWMutex
	lockDeleteReadOlderThan sync.RWMutex
	lockListByUser          sync.RWMutex
	lockMarkAllRead         sync.RWMutex
	lockMarkRead            sync.RWMutex
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, userID)
}

func (mock *notificationRepoMock) CountUnreadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *notificationRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("notificationRepoMock.DeleteFunc: method is nil but notificationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *notificationRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *notificationRepoMock) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.DeleteReadOlderThanFunc == nil {
		panic("notificationRepoMock.DeleteReadOlderThanFunc: method is nil but notificationRepo.DeleteReadOlderThan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteReadOlderThan.Lock()
	mock.calls.DeleteReadOlderThan = append(mock.calls.DeleteReadOlderThan, callInfo)
	mock.lockDeleteReadOlderThan.Unlock()
	return mock.DeleteReadOlderThanFunc(ctx, cutoff)
}

func (mock *notificationRepoMock) DeleteReadOlderThanCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockDeleteReadOlderThan.RLock()
	calls := mock.calls.DeleteReadOlderThan
	mock.lockDeleteReadOlderThan.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		UnreadOnly bool
		Limit      int
		Offset     int
	}{Ctx: ctx, UserID: userID, UnreadOnly: unreadOnly, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, unreadOnly, limit, offset)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
	Offset     int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID)
}

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, userID, id)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
