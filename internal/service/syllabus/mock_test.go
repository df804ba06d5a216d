package syllabus

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc  func(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	UpdateFunc  func(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error)

	calls struct {
		Create  []struct{ Doc *domain.SyllabusDocument }
		GetByID []struct{ ID uuid.UUID }
		Update  []struct{ Doc *domain.SyllabusDocument }
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Doc *domain.SyllabusDocument }{Doc: doc})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, doc)
}

func (mock *documentRepoMock) CreateCalls() []struct{ Doc *domain.SyllabusDocument } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *documentRepoMock) Update(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error) {
	if mock.UpdateFunc == nil {
		panic("documentRepoMock.UpdateFunc: method is nil but documentRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Doc *domain.SyllabusDocument }{Doc: doc})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, doc)
}

func (mock *documentRepoMock) UpdateCalls() []struct{ Doc *domain.SyllabusDocument } {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	GetByCodeFunc func(ctx context.Context, code string) (*domain.Course, error)

	calls struct {
		GetByCode []struct{ Code string }
	}
	lockGetByCode sync.RWMutex
}

func (mock *courseRepoMock) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	if mock.GetByCodeFunc == nil {
		panic("courseRepoMock.GetByCodeFunc: method is nil but courseRepo.GetByCode was just called")
	}
	mock.lockGetByCode.Lock()
	mock.calls.GetByCode = append(mock.calls.GetByCode, struct{ Code string }{Code: code})
	mock.lockGetByCode.Unlock()
	return mock.GetByCodeFunc(ctx, code)
}

func (mock *courseRepoMock) GetByCodeCalls() []struct{ Code string } {
	mock.lockGetByCode.RLock()
	defer mock.lockGetByCode.RUnlock()
	return mock.calls.GetByCode
}

var _ layoutReader = &layoutReaderMock{}

type layoutReaderMock struct {
	GetActiveFunc func(ctx context.Context, curso string) (*domain.LayoutModel, error)

	calls struct {
		GetActive []struct{ Curso string }
	}
	lockGetActive sync.RWMutex
}

func (mock *layoutReaderMock) GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error) {
	if mock.GetActiveFunc == nil {
		panic("layoutReaderMock.GetActiveFunc: method is nil but layoutReader.GetActive was just called")
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, struct{ Curso string }{Curso: curso})
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, curso)
}

func (mock *layoutReaderMock) GetActiveCalls() []struct{ Curso string } {
	mock.lockGetActive.RLock()
	defer mock.lockGetActive.RUnlock()
	return mock.calls.GetActive
}
