package expiry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/keepit-backend/internal/domain"
)

var _ matchingRepo = &matchingRepoMock{}

type matchingRepoMock struct {
	ListEligibleFunc     func(ctx context.Context, day time.Time, confirmDays int) ([]domain.Matching, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Matching, error)

	calls struct {
		ListEligible []struct {
			Ctx         context.Context
			Day         time.Time
			ConfirmDays int
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListEligible     sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
}

func (mock *matchingRepoMock) ListEligible(ctx context.Context, day time.Time, confirmDays int) ([]domain.Matching, error) {
	if mock.ListEligibleFunc == nil {
		panic("matchingRepoMock.ListEligibleFunc: method is nil but matchingRepo.ListEligible was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Day         time.Time
		ConfirmDays int
	}{Ctx: ctx, Day: day, ConfirmDays: confirmDays}
	mock.lockListEligible.Lock()
	mock.calls.ListEligible = append(mock.calls.ListEligible, callInfo)
	mock.lockListEligible.Unlock()
	return mock.ListEligibleFunc(ctx, day, confirmDays)
}

func (mock *matchingRepoMock) ListEligibleCalls() []struct {
	Ctx         context.Context
	Day         time.Time
	ConfirmDays int
} {
	mock.lockListEligible.RLock()
	calls := mock.calls.ListEligible
	mock.lockListEligible.RUnlock()
	return calls
}

func (mock *matchingRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matching, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("matchingRepoMock.GetByIDForUpdateFunc: method is nil but matchingRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *matchingRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

var _ noticeRepo = &noticeRepoMock{}

type noticeRepoMock struct {
	ClaimFunc func(ctx context.Context, matchingID uuid.UUID, trigger domain.Trigger, day time.Time) (bool, error)

	calls struct {
		Claim []struct {
			Ctx        context.Context
			MatchingID uuid.UUID
			Trigger    domain.Trigger
			Day        time.Time
		}
	}
	lockClaim sync.RWMutex
}

func (mock *noticeRepoMock) Claim(ctx context.Context, matchingID uuid.UUID, trigger domain.Trigger, day time.Time) (bool, error) {
	if mock.ClaimFunc == nil {
		panic("noticeRepoMock.ClaimFunc: method is nil but noticeRepo.Claim was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MatchingID uuid.UUID
		Trigger    domain.Trigger
		Day        time.Time
	}{Ctx: ctx, MatchingID: matchingID, Trigger: trigger, Day: day}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, matchingID, trigger, day)
}

func (mock *noticeRepoMock) ClaimCalls() []struct {
	Ctx        context.Context
	MatchingID uuid.UUID
	Trigger    domain.Trigger
	Day        time.Time
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	PersistFunc func(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error)
	PushAllFunc func(ctx context.Context, ns []*domain.Notification)

	calls struct {
		Persist []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Message string
		}
		PushAll []struct {
			Ctx context.Context
			Ns  []*domain.Notification
		}
	}
	lockPersist sync.RWMutex
	lockPushAll sync.RWMutex
}

func (mock *notifierMock) Persist(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error) {
	if mock.PersistFunc == nil {
		panic("notifierMock.PersistFunc: method is nil but notifier.Persist was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Message string
	}{Ctx: ctx, UserID: userID, Message: message}
	mock.lockPersist.Lock()
	mock.calls.Persist = append(mock.calls.Persist, callInfo)
	mock.lockPersist.Unlock()
	return mock.PersistFunc(ctx, userID, message)
}

func (mock *notifierMock) PersistCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Message string
} {
	mock.lockPersist.RLock()
	calls := mock.calls.Persist
	mock.lockPersist.RUnlock()
	return calls
}

func (mock *notifierMock) PushAll(ctx context.Context, ns []*domain.Notification) {
	if mock.PushAllFunc == nil {
		panic("notifierMock.PushAllFunc: method is nil but notifier.PushAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ns  []*domain.Notification
	}{Ctx: ctx, Ns: ns}
	mock.lockPushAll.Lock()
	mock.calls.PushAll = append(mock.calls.PushAll, callInfo)
	mock.lockPushAll.Unlock()
	mock.PushAllFunc(ctx, ns)
}

func (mock *notifierMock) PushAllCalls() []struct {
	Ctx context.Context
	Ns  []*domain.Notification
} {
	mock.lockPushAll.RLock()
	calls := mock.calls.PushAll
	mock.lockPushAll.RUnlock()
	return calls
}
