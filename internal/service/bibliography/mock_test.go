package bibliography

import (
	"context"
	"sync"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var _ Provider = &providerMock{}

type providerMock struct {
	NameFunc   func() string
	SearchFunc func(ctx context.Context, query string, limit int) ([]domain.BibRecord, error)

	calls struct {
		Search []struct {
			Query string
			Limit int
		}
	}
	lockSearch sync.RWMutex
}

func (mock *providerMock) Name() string {
	if mock.NameFunc == nil {
		panic("providerMock.NameFunc: method is nil but Provider.Name was just called")
	}
	return mock.NameFunc()
}

func (mock *providerMock) Search(ctx context.Context, query string, limit int) ([]domain.BibRecord, error) {
	if mock.SearchFunc == nil {
		panic("providerMock.SearchFunc: method is nil but Provider.Search was just called")
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Query string
		Limit int
	}{Query: query, Limit: limit})
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query, limit)
}

func (mock *providerMock) SearchCalls() []struct {
	Query string
	Limit int
} {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}

var _ resultCache = &resultCacheMock{}

type resultCacheMock struct {
	GetFunc func(ctx context.Context, key string) (*domain.BibSearchResult, error)
	SetFunc func(ctx context.Context, key string, res domain.BibSearchResult) error

	calls struct {
		Get []struct{ Key string }
		Set []struct {
			Key string
			Res domain.BibSearchResult
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *resultCacheMock) Get(ctx context.Context, key string) (*domain.BibSearchResult, error) {
	if mock.GetFunc == nil {
		panic("resultCacheMock.GetFunc: method is nil but resultCache.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Key string }{Key: key})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *resultCacheMock) GetCalls() []struct{ Key string } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *resultCacheMock) Set(ctx context.Context, key string, res domain.BibSearchResult) error {
	if mock.SetFunc == nil {
		panic("resultCacheMock.SetFunc: method is nil but resultCache.Set was just called")
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Key string
		Res domain.BibSearchResult
	}{Key: key, Res: res})
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, res)
}

func (mock *resultCacheMock) SetCalls() []struct {
	Key string
	Res domain.BibSearchResult
} {
	mock.lockSet.RLock()
	defer mock.lockSet.RUnlock()
	return mock.calls.Set
}
