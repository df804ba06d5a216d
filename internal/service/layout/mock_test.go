package layout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var _ modelRepo = &modelRepoMock{}

type modelRepoMock struct {
	CreateFunc           func(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error)
	UpdateFunc           func(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error)
	GetActiveFunc        func(ctx context.Context, curso string) (*domain.LayoutModel, error)
	ListByCourseFunc     func(ctx context.Context, curso string) ([]*domain.LayoutModel, error)
	LockCourseFunc       func(ctx context.Context, curso string) error
	DeactivateOthersFunc func(ctx context.Context, curso string, keep uuid.UUID) error
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.LayoutModel, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create           []struct{ M *domain.LayoutModel }
		Update           []struct{ M *domain.LayoutModel }
		GetByID          []struct{ ID uuid.UUID }
		GetByIDForUpdate []struct{ ID uuid.UUID }
		GetActive        []struct{ Curso string }
		ListByCourse     []struct{ Curso string }
		LockCourse       []struct{ Curso string }
		DeactivateOthers []struct {
			Curso string
			Keep  uuid.UUID
		}
		SetActive []struct {
			ID uuid.UUID
			At time.Time
		}
		Delete []struct{ ID uuid.UUID }
	}
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockGetActive        sync.RWMutex
	lockListByCourse     sync.RWMutex
	lockLockCourse       sync.RWMutex
	lockDeactivateOthers sync.RWMutex
	lockSetActive        sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *modelRepoMock) Create(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	if mock.CreateFunc == nil {
		panic("modelRepoMock.CreateFunc: method is nil but modelRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ M *domain.LayoutModel }{M: m})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *modelRepoMock) CreateCalls() []struct{ M *domain.LayoutModel } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *modelRepoMock) Update(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	if mock.UpdateFunc == nil {
		panic("modelRepoMock.UpdateFunc: method is nil but modelRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ M *domain.LayoutModel }{M: m})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, m)
}

func (mock *modelRepoMock) UpdateCalls() []struct{ M *domain.LayoutModel } {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *modelRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	if mock.GetByIDFunc == nil {
		panic("modelRepoMock.GetByIDFunc: method is nil but modelRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *modelRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *modelRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("modelRepoMock.GetByIDForUpdateFunc: method is nil but modelRepo.GetByIDForUpdate was just called")
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *modelRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByIDForUpdate.RLock()
	defer mock.lockGetByIDForUpdate.RUnlock()
	return mock.calls.GetByIDForUpdate
}

func (mock *modelRepoMock) GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error) {
	if mock.GetActiveFunc == nil {
		panic("modelRepoMock.GetActiveFunc: method is nil but modelRepo.GetActive was just called")
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, struct{ Curso string }{Curso: curso})
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, curso)
}

func (mock *modelRepoMock) GetActiveCalls() []struct{ Curso string } {
	mock.lockGetActive.RLock()
	defer mock.lockGetActive.RUnlock()
	return mock.calls.GetActive
}

func (mock *modelRepoMock) ListByCourse(ctx context.Context, curso string) ([]*domain.LayoutModel, error) {
	if mock.ListByCourseFunc == nil {
		panic("modelRepoMock.ListByCourseFunc: method is nil but modelRepo.ListByCourse was just called")
	}
	mock.lockListByCourse.Lock()
	mock.calls.ListByCourse = append(mock.calls.ListByCourse, struct{ Curso string }{Curso: curso})
	mock.lockListByCourse.Unlock()
	return mock.ListByCourseFunc(ctx, curso)
}

func (mock *modelRepoMock) ListByCourseCalls() []struct{ Curso string } {
	mock.lockListByCourse.RLock()
	defer mock.lockListByCourse.RUnlock()
	return mock.calls.ListByCourse
}

func (mock *modelRepoMock) LockCourse(ctx context.Context, curso string) error {
	if mock.LockCourseFunc == nil {
		panic("modelRepoMock.LockCourseFunc: method is nil but modelRepo.LockCourse was just called")
	}
	mock.lockLockCourse.Lock()
	mock.calls.LockCourse = append(mock.calls.LockCourse, struct{ Curso string }{Curso: curso})
	mock.lockLockCourse.Unlock()
	return mock.LockCourseFunc(ctx, curso)
}

func (mock *modelRepoMock) LockCourseCalls() []struct{ Curso string } {
	mock.lockLockCourse.RLock()
	defer mock.lockLockCourse.RUnlock()
	return mock.calls.LockCourse
}

func (mock *modelRepoMock) DeactivateOthers(ctx context.Context, curso string, keep uuid.UUID) error {
	if mock.DeactivateOthersFunc == nil {
		panic("modelRepoMock.DeactivateOthersFunc: method is nil but modelRepo.DeactivateOthers was just called")
	}
	callInfo := struct {
		Curso string
		Keep  uuid.UUID
	}{Curso: curso, Keep: keep}
	mock.lockDeactivateOthers.Lock()
	mock.calls.DeactivateOthers = append(mock.calls.DeactivateOthers, callInfo)
	mock.lockDeactivateOthers.Unlock()
	return mock.DeactivateOthersFunc(ctx, curso, keep)
}

func (mock *modelRepoMock) DeactivateOthersCalls() []struct {
	Curso string
	Keep  uuid.UUID
} {
	mock.lockDeactivateOthers.RLock()
	defer mock.lockDeactivateOthers.RUnlock()
	return mock.calls.DeactivateOthers
}

func (mock *modelRepoMock) SetActive(ctx context.Context, id uuid.UUID, at time.Time) (*domain.LayoutModel, error) {
	if mock.SetActiveFunc == nil {
		panic("modelRepoMock.SetActiveFunc: method is nil but modelRepo.SetActive was just called")
	}
	callInfo := struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, at)
}

func (mock *modelRepoMock) SetActiveCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lockSetActive.RLock()
	defer mock.lockSetActive.RUnlock()
	return mock.calls.SetActive
}

func (mock *modelRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("modelRepoMock.DeleteFunc: method is nil but modelRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *modelRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc       func(ctx context.Context, entry domain.LayoutHistoryEntry) error
	ListByCourseFunc func(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error)

	calls struct {
		Append       []struct{ Entry domain.LayoutHistoryEntry }
		ListByCourse []struct{ Curso string }
	}
	lockAppend       sync.RWMutex
	lockListByCourse sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, entry domain.LayoutHistoryEntry) error {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, struct{ Entry domain.LayoutHistoryEntry }{Entry: entry})
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *historyRepoMock) AppendCalls() []struct{ Entry domain.LayoutHistoryEntry } {
	mock.lockAppend.RLock()
	defer mock.lockAppend.RUnlock()
	return mock.calls.Append
}

func (mock *historyRepoMock) ListByCourse(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error) {
	if mock.ListByCourseFunc == nil {
		panic("historyRepoMock.ListByCourseFunc: method is nil but historyRepo.ListByCourse was just called")
	}
	mock.lockListByCourse.Lock()
	mock.calls.ListByCourse = append(mock.calls.ListByCourse, struct{ Curso string }{Curso: curso})
	mock.lockListByCourse.Unlock()
	return mock.ListByCourseFunc(ctx, curso)
}

func (mock *historyRepoMock) ListByCourseCalls() []struct{ Curso string } {
	mock.lockListByCourse.RLock()
	defer mock.lockListByCourse.RUnlock()
	return mock.calls.ListByCourse
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
