package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

var (
	_ vocabularyRepo = &vocabularyRepoMock{}
	_ progressRepo   = &progressRepoMock{}
)

type vocabularyRepoMock struct {
	FindFunc     func(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.VocabularyItem, error)

	calls struct {
		Find     []struct{ Filter domain.VocabularyFilter }
		GetByIDs []struct{ IDs []uuid.UUID }
	}
	lockFind     sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *vocabularyRepoMock) Find(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error) {
	if mock.FindFunc == nil {
		panic("vocabularyRepoMock.FindFunc: method is nil but vocabularyRepo.Find was just called")
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, struct{ Filter domain.VocabularyFilter }{Filter: filter})
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *vocabularyRepoMock) FindCalls() []struct{ Filter domain.VocabularyFilter } {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.VocabularyItem, error) {
	if mock.GetByIDsFunc == nil {
		panic("vocabularyRepoMock.GetByIDsFunc: method is nil but vocabularyRepo.GetByIDs was just called")
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *vocabularyRepoMock) GetByIDsCalls() []struct{ IDs []uuid.UUID } {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

type progressRepoMock struct {
	QueryByUserFunc func(ctx context.Context, userID string, filter domain.ProgressFilter) ([]domain.ProgressRecord, error)

	calls struct {
		QueryByUser []struct {
			UserID string
			Filter domain.ProgressFilter
		}
	}
	lockQueryByUser sync.RWMutex
}

func (mock *progressRepoMock) QueryByUser(ctx context.Context, userID string, filter domain.ProgressFilter) ([]domain.ProgressRecord, error) {
	if mock.QueryByUserFunc == nil {
		panic("progressRepoMock.QueryByUserFunc: method is nil but progressRepo.QueryByUser was just called")
	}
	callInfo := struct {
		UserID string
		Filter domain.ProgressFilter
	}{UserID: userID, Filter: filter}
	mock.lockQueryByUser.Lock()
	mock.calls.QueryByUser = append(mock.calls.QueryByUser, callInfo)
	mock.lockQueryByUser.Unlock()
	return mock.QueryByUserFunc(ctx, userID, filter)
}

func (mock *progressRepoMock) QueryByUserCalls() []struct {
	UserID string
	Filter domain.ProgressFilter
} {
	mock.lockQueryByUser.RLock()
	calls := mock.calls.QueryByUser
	mock.lockQueryByUser.RUnlock()
	return calls
}
