package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/internal/service/notification"
)

var _ matchingService = &matchingServiceMock{}

type matchingServiceMock struct {
	OpenFunc                func(ctx context.Context, actor domain.Actor, productID uuid.UUID) (*domain.Matching, error)
	GetFunc                 func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error)
	KeepFunc                func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, placeID uuid.UUID) (*domain.Matching, error)
	HostAcceptRequestFunc   func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, accepted bool) (*domain.Matching, error)
	GuestConfirmStorageFunc func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	CompleteStorageFunc     func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	CancelRequestFunc       func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error)
	WithdrawFunc            func(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) error

	calls struct {
		Open []struct {
			Ctx       context.Context
			Actor     domain.Actor
			ProductID uuid.UUID
		}
		Get []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
		Keep []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
			PlaceID    uuid.UUID
		}
		HostAcceptRequest []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
			Accepted   bool
		}
		GuestConfirmStorage []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
		}
		CompleteStorage []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
		}
		CancelRequest []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
		}
		Withdraw []struct {
			Ctx        context.Context
			Actor      domain.Actor
			MatchingID uuid.UUID
		}
	}
	lockOpen                sync.RWMutex
	lockGet                 sync.RWMutex
	lockKeep                sync.RWMutex
	lockHostAcceptRequest   sync.RWMutex
	lockGuestConfirmStorage sync.RWMutex
	lockCompleteStorage     sync.RWMutex
	lockCancelRequest       sync.RWMutex
	lockWithdraw            sync.RWMutex
}

func (mock *matchingServiceMock) Open(ctx context.Context, actor domain.Actor, productID uuid.UUID) (*domain.Matching, error) {
	if mock.OpenFunc == nil {
		panic("matchingServiceMock.OpenFunc: method is nil but matchingService.Open was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Actor     domain.Actor
		ProductID uuid.UUID
	}{Ctx: ctx, Actor: actor, ProductID: productID}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, actor, productID)
}

func (mock *matchingServiceMock) OpenCalls() []struct {
	Ctx       context.Context
	Actor     domain.Actor
	ProductID uuid.UUID
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *matchingServiceMock) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Matching, error) {
	if mock.GetFunc == nil {
		panic("matchingServiceMock.GetFunc: method is nil but matchingService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, actor, id)
}

func (mock *matchingServiceMock) GetCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	ID    uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *matchingServiceMock) Keep(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, placeID uuid.UUID) (*domain.Matching, error) {
	if mock.KeepFunc == nil {
		panic("matchingServiceMock.KeepFunc: method is nil but matchingService.Keep was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
		PlaceID    uuid.UUID
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID, PlaceID: placeID}
	mock.lockKeep.Lock()
	mock.calls.Keep = append(mock.calls.Keep, callInfo)
	mock.lockKeep.Unlock()
	return mock.KeepFunc(ctx, actor, matchingID, placeID)
}

func (mock *matchingServiceMock) KeepCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
	PlaceID    uuid.UUID
} {
	mock.lockKeep.RLock()
	calls := mock.calls.Keep
	mock.lockKeep.RUnlock()
	return calls
}

func (mock *matchingServiceMock) HostAcceptRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID, accepted bool) (*domain.Matching, error) {
	if mock.HostAcceptRequestFunc == nil {
		panic("matchingServiceMock.HostAcceptRequestFunc: method is nil but matchingService.HostAcceptRequest was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
		Accepted   bool
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID, Accepted: accepted}
	mock.lockHostAcceptRequest.Lock()
	mock.calls.HostAcceptRequest = append(mock.calls.HostAcceptRequest, callInfo)
	mock.lockHostAcceptRequest.Unlock()
	return mock.HostAcceptRequestFunc(ctx, actor, matchingID, accepted)
}

func (mock *matchingServiceMock) HostAcceptRequestCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
	Accepted   bool
} {
	mock.lockHostAcceptRequest.RLock()
	calls := mock.calls.HostAcceptRequest
	mock.lockHostAcceptRequest.RUnlock()
	return calls
}

func (mock *matchingServiceMock) GuestConfirmStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	if mock.GuestConfirmStorageFunc == nil {
		panic("matchingServiceMock.GuestConfirmStorageFunc: method is nil but matchingService.GuestConfirmStorage was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID}
	mock.lockGuestConfirmStorage.Lock()
	mock.calls.GuestConfirmStorage = append(mock.calls.GuestConfirmStorage, callInfo)
	mock.lockGuestConfirmStorage.Unlock()
	return mock.GuestConfirmStorageFunc(ctx, actor, matchingID)
}

func (mock *matchingServiceMock) GuestConfirmStorageCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
} {
	mock.lockGuestConfirmStorage.RLock()
	calls := mock.calls.GuestConfirmStorage
	mock.lockGuestConfirmStorage.RUnlock()
	return calls
}

func (mock *matchingServiceMock) CompleteStorage(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	if mock.CompleteStorageFunc == nil {
		panic("matchingServiceMock.CompleteStorageFunc: method is nil but matchingService.CompleteStorage was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID}
	mock.lockCompleteStorage.Lock()
	mock.calls.CompleteStorage = append(mock.calls.CompleteStorage, callInfo)
	mock.lockCompleteStorage.Unlock()
	return mock.CompleteStorageFunc(ctx, actor, matchingID)
}

func (mock *matchingServiceMock) CompleteStorageCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
} {
	mock.lockCompleteStorage.RLock()
	calls := mock.calls.CompleteStorage
	mock.lockCompleteStorage.RUnlock()
	return calls
}

func (mock *matchingServiceMock) CancelRequest(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) (*domain.Matching, error) {
	if mock.CancelRequestFunc == nil {
		panic("matchingServiceMock.CancelRequestFunc: method is nil but matchingService.CancelRequest was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID}
	mock.lockCancelRequest.Lock()
	mock.calls.CancelRequest = append(mock.calls.CancelRequest, callInfo)
	mock.lockCancelRequest.Unlock()
	return mock.CancelRequestFunc(ctx, actor, matchingID)
}

func (mock *matchingServiceMock) CancelRequestCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
} {
	mock.lockCancelRequest.RLock()
	calls := mock.calls.CancelRequest
	mock.lockCancelRequest.RUnlock()
	return calls
}

func (mock *matchingServiceMock) Withdraw(ctx context.Context, actor domain.Actor, matchingID uuid.UUID) error {
	if mock.WithdrawFunc == nil {
		panic("matchingServiceMock.WithdrawFunc: method is nil but matchingService.Withdraw was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		MatchingID uuid.UUID
	}{Ctx: ctx, Actor: actor, MatchingID: matchingID}
	mock.lockWithdraw.Lock()
	mock.calls.Withdraw = append(mock.calls.Withdraw, callInfo)
	mock.lockWithdraw.Unlock()
	return mock.WithdrawFunc(ctx, actor, matchingID)
}

func (mock *matchingServiceMock) WithdrawCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	MatchingID uuid.UUID
} {
	mock.lockWithdraw.RLock()
	calls := mock.calls.Withdraw
	mock.lockWithdraw.RUnlock()
	return calls
}

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListFunc        func(ctx context.Context, input notification.ListInput) ([]notification.View, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) error
	MarkAllReadFunc func(ctx context.Context) (int64, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Input notification.ListInput
		}
		UnreadCount []struct {
			Ctx context.Context
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockUnreadCount sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkAllRead sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *notificationServiceMock) List(ctx context.Context, input notification.ListInput) ([]notification.View, error) {
	if mock.ListFunc == nil {
		panic("notificationServiceMock.ListFunc: method is nil but notificationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *notificationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input notification.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnreadCount(ctx context.Context) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationServiceMock.UnreadCountFunc: method is nil but notificationService.UnreadCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx)
}

func (mock *notificationServiceMock) UnreadCountCalls() []struct {
	Ctx context.Context
} {
	mock.lockUnreadCount.RLock()
	calls := mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct {
	Ctx context.Context
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("notificationServiceMock.DeleteFunc: method is nil but notificationService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *notificationServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
