package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

var (
	_ vocabularyRepo = &vocabularyRepoMock{}
	_ progressRepo   = &progressRepoMock{}
	_ txManager      = &txManagerMock{}
)

type vocabularyRepoMock struct {
	GetFunc func(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error)

	calls struct {
		Get []struct{ ID uuid.UUID }
	}
	lockGet sync.RWMutex
}

func (mock *vocabularyRepoMock) Get(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error) {
	if mock.GetFunc == nil {
		panic("vocabularyRepoMock.GetFunc: method is nil but vocabularyRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID uuid.UUID }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *vocabularyRepoMock) GetCalls() []struct{ ID uuid.UUID } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

type progressRepoMock struct {
	GetFunc               func(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error)
	GetForUpdateFunc      func(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error)
	UpsertFunc            func(ctx context.Context, rec domain.ProgressRecord) (domain.ProgressRecord, error)
	CountByStatusFunc     func(ctx context.Context, userID string) (domain.StatusCounts, error)
	CountLearnedSinceFunc func(ctx context.Context, userID string, since time.Time) (int, error)

	calls struct {
		Upsert            []struct{ Rec domain.ProgressRecord }
		CountLearnedSince []struct {
			UserID string
			Since  time.Time
		}
	}
	lockUpsert            sync.RWMutex
	lockCountLearnedSince sync.RWMutex
}

func (mock *progressRepoMock) Get(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error) {
	if mock.GetFunc == nil {
		panic("progressRepoMock.GetFunc: method is nil but progressRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, vocabularyID)
}

func (mock *progressRepoMock) GetForUpdate(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error) {
	if mock.GetForUpdateFunc == nil {
		panic("progressRepoMock.GetForUpdateFunc: method is nil but progressRepo.GetForUpdate was just called")
	}
	return mock.GetForUpdateFunc(ctx, userID, vocabularyID)
}

func (mock *progressRepoMock) Upsert(ctx context.Context, rec domain.ProgressRecord) (domain.ProgressRecord, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Rec domain.ProgressRecord }{Rec: rec})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, rec)
}

func (mock *progressRepoMock) UpsertCalls() []struct{ Rec domain.ProgressRecord } {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *progressRepoMock) CountByStatus(ctx context.Context, userID string) (domain.StatusCounts, error) {
	if mock.CountByStatusFunc == nil {
		panic("progressRepoMock.CountByStatusFunc: method is nil but progressRepo.CountByStatus was just called")
	}
	return mock.CountByStatusFunc(ctx, userID)
}

func (mock *progressRepoMock) CountLearnedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	if mock.CountLearnedSinceFunc == nil {
		panic("progressRepoMock.CountLearnedSinceFunc: method is nil but progressRepo.CountLearnedSince was just called")
	}
	callInfo := struct {
		UserID string
		Since  time.Time
	}{UserID: userID, Since: since}
	mock.lockCountLearnedSince.Lock()
	mock.calls.CountLearnedSince = append(mock.calls.CountLearnedSince, callInfo)
	mock.lockCountLearnedSince.Unlock()
	return mock.CountLearnedSinceFunc(ctx, userID, since)
}

func (mock *progressRepoMock) CountLearnedSinceCalls() []struct {
	UserID string
	Since  time.Time
} {
	mock.lockCountLearnedSince.RLock()
	calls := mock.calls.CountLearnedSince
	mock.lockCountLearnedSince.RUnlock()
	return calls
}

// txManagerMock runs the callback directly without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
