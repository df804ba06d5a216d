package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var _ courseWriter = &courseWriterMock{}

type courseWriterMock struct {
	UpsertFunc func(ctx context.Context, c domain.Course) error

	calls struct {
		Upsert []struct {
			Ctx context.Context
			C   domain.Course
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *courseWriterMock) Upsert(ctx context.Context, c domain.Course) error {
	if mock.UpsertFunc == nil {
		panic("courseWriterMock.UpsertFunc: method is nil but courseWriter.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Course
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *courseWriterMock) UpsertCalls() []struct {
	Ctx context.Context
	C   domain.Course
} {
	mock.lockUpsert.RLock()
	defer mock.lockUpsert.RUnlock()
	return mock.calls.Upsert
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
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
