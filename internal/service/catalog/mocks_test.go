package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

var (
	_ vocabularyRepo = &vocabularyRepoMock{}
	_ progressRepo   = &progressRepoMock{}
	_ txManager      = &txManagerMock{}
)

type vocabularyRepoMock struct {
	CreateFunc    func(ctx context.Context, item domain.VocabularyItem) (domain.VocabularyItem, error)
	GetFunc       func(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error)
	GetByWordFunc func(ctx context.Context, word string) (domain.VocabularyItem, error)
	FindFunc      func(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (domain.VocabularyItem, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct{ Item domain.VocabularyItem }
		Update []struct {
			ID  uuid.UUID
			Upd domain.VocabularyUpdate
		}
		Delete []struct{ ID uuid.UUID }
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *vocabularyRepoMock) Create(ctx context.Context, item domain.VocabularyItem) (domain.VocabularyItem, error) {
	if mock.CreateFunc == nil {
		panic("vocabularyRepoMock.CreateFunc: method is nil but vocabularyRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Item domain.VocabularyItem }{Item: item})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *vocabularyRepoMock) CreateCalls() []struct{ Item domain.VocabularyItem } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) Get(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error) {
	if mock.GetFunc == nil {
		panic("vocabularyRepoMock.GetFunc: method is nil but vocabularyRepo.Get was just called")
	}
	return mock.GetFunc(ctx, id)
}

func (mock *vocabularyRepoMock) GetByWord(ctx context.Context, word string) (domain.VocabularyItem, error) {
	if mock.GetByWordFunc == nil {
		panic("vocabularyRepoMock.GetByWordFunc: method is nil but vocabularyRepo.GetByWord was just called")
	}
	return mock.GetByWordFunc(ctx, word)
}

func (mock *vocabularyRepoMock) Find(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error) {
	if mock.FindFunc == nil {
		panic("vocabularyRepoMock.FindFunc: method is nil but vocabularyRepo.Find was just called")
	}
	return mock.FindFunc(ctx, filter)
}

func (mock *vocabularyRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (domain.VocabularyItem, error) {
	if mock.UpdateFunc == nil {
		panic("vocabularyRepoMock.UpdateFunc: method is nil but vocabularyRepo.Update was just called")
	}
	callInfo := struct {
		ID  uuid.UUID
		Upd domain.VocabularyUpdate
	}{ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *vocabularyRepoMock) UpdateCalls() []struct {
	ID  uuid.UUID
	Upd domain.VocabularyUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabularyRepoMock.DeleteFunc: method is nil but vocabularyRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *vocabularyRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type progressRepoMock struct {
	DeleteByVocabularyFunc func(ctx context.Context, vocabularyID uuid.UUID) (int64, error)

	calls struct {
		DeleteByVocabulary []struct{ VocabularyID uuid.UUID }
	}
	lockDeleteByVocabulary sync.RWMutex
}

func (mock *progressRepoMock) DeleteByVocabulary(ctx context.Context, vocabularyID uuid.UUID) (int64, error) {
	if mock.DeleteByVocabularyFunc == nil {
		panic("progressRepoMock.DeleteByVocabularyFunc: method is nil but progressRepo.DeleteByVocabulary was just called")
	}
	mock.lockDeleteByVocabulary.Lock()
	mock.calls.DeleteByVocabulary = append(mock.calls.DeleteByVocabulary, struct{ VocabularyID uuid.UUID }{VocabularyID: vocabularyID})
	mock.lockDeleteByVocabulary.Unlock()
	return mock.DeleteByVocabularyFunc(ctx, vocabularyID)
}

func (mock *progressRepoMock) DeleteByVocabularyCalls() []struct{ VocabularyID uuid.UUID } {
	mock.lockDeleteByVocabulary.RLock()
	calls := mock.calls.DeleteByVocabulary
	mock.lockDeleteByVocabulary.RUnlock()
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
