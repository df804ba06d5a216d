package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/bibliography"
	"github.com/heartmarshall/syllabus-backend/internal/service/layout"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
)

var _ layoutService = &layoutServiceMock{}

type layoutServiceMock struct {
	GetActiveFunc      func(ctx context.Context, curso string) (*domain.LayoutModel, error)
	ListModelsFunc     func(ctx context.Context, curso string) ([]*domain.LayoutModel, error)
	CreateOrUpdateFunc func(ctx context.Context, input layout.CreateOrUpdateInput) (*domain.LayoutModel, error)
	ActivateFunc       func(ctx context.Context, modelID uuid.UUID) (*domain.LayoutModel, error)
	DeleteFunc         func(ctx context.Context, modelID uuid.UUID) error
	HistoryFunc        func(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error)

	calls struct {
		GetActive []struct {
			Ctx   context.Context
			Curso string
		}
		ListModels []struct {
			Ctx   context.Context
			Curso string
		}
		CreateOrUpdate []struct {
			Ctx   context.Context
			Input layout.CreateOrUpdateInput
		}
		Activate []struct {
			Ctx     context.Context
			ModelID uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			ModelID uuid.UUID
		}
		History []struct {
			Ctx   context.Context
			Curso string
		}
	}
	lockGetActive      sync.RWMutex
	lockListModels     sync.RWMutex
	lockCreateOrUpdate sync.RWMutex
	lockActivate       sync.RWMutex
	lockDelete         sync.RWMutex
	lockHistory        sync.RWMutex
}

func (mock *layoutServiceMock) GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error) {
	if mock.GetActiveFunc == nil {
		panic("layoutServiceMock.GetActiveFunc: method is nil but layoutService.GetActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Curso string
	}{Ctx: ctx, Curso: curso}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, curso)
}

func (mock *layoutServiceMock) GetActiveCalls() []struct {
	Ctx   context.Context
	Curso string
} {
	mock.lockGetActive.RLock()
	defer mock.lockGetActive.RUnlock()
	return mock.calls.GetActive
}

func (mock *layoutServiceMock) ListModels(ctx context.Context, curso string) ([]*domain.LayoutModel, error) {
	if mock.ListModelsFunc == nil {
		panic("layoutServiceMock.ListModelsFunc: method is nil but layoutService.ListModels was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Curso string
	}{Ctx: ctx, Curso: curso}
	mock.lockListModels.Lock()
	mock.calls.ListModels = append(mock.calls.ListModels, callInfo)
	mock.lockListModels.Unlock()
	return mock.ListModelsFunc(ctx, curso)
}

func (mock *layoutServiceMock) ListModelsCalls() []struct {
	Ctx   context.Context
	Curso string
} {
	mock.lockListModels.RLock()
	defer mock.lockListModels.RUnlock()
	return mock.calls.ListModels
}

func (mock *layoutServiceMock) CreateOrUpdate(ctx context.Context, input layout.CreateOrUpdateInput) (*domain.LayoutModel, error) {
	if mock.CreateOrUpdateFunc == nil {
		panic("layoutServiceMock.CreateOrUpdateFunc: method is nil but layoutService.CreateOrUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input layout.CreateOrUpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateOrUpdate.Lock()
	mock.calls.CreateOrUpdate = append(mock.calls.CreateOrUpdate, callInfo)
	mock.lockCreateOrUpdate.Unlock()
	return mock.CreateOrUpdateFunc(ctx, input)
}

func (mock *layoutServiceMock) CreateOrUpdateCalls() []struct {
	Ctx   context.Context
	Input layout.CreateOrUpdateInput
} {
	mock.lockCreateOrUpdate.RLock()
	defer mock.lockCreateOrUpdate.RUnlock()
	return mock.calls.CreateOrUpdate
}

func (mock *layoutServiceMock) Activate(ctx context.Context, modelID uuid.UUID) (*domain.LayoutModel, error) {
	if mock.ActivateFunc == nil {
		panic("layoutServiceMock.ActivateFunc: method is nil but layoutService.Activate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ModelID uuid.UUID
	}{Ctx: ctx, ModelID: modelID}
	mock.lockActivate.Lock()
	mock.calls.Activate = append(mock.calls.Activate, callInfo)
	mock.lockActivate.Unlock()
	return mock.ActivateFunc(ctx, modelID)
}

func (mock *layoutServiceMock) ActivateCalls() []struct {
	Ctx     context.Context
	ModelID uuid.UUID
} {
	mock.lockActivate.RLock()
	defer mock.lockActivate.RUnlock()
	return mock.calls.Activate
}

func (mock *layoutServiceMock) Delete(ctx context.Context, modelID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("layoutServiceMock.DeleteFunc: method is nil but layoutService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ModelID uuid.UUID
	}{Ctx: ctx, ModelID: modelID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, modelID)
}

func (mock *layoutServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	ModelID uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *layoutServiceMock) History(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error) {
	if mock.HistoryFunc == nil {
		panic("layoutServiceMock.HistoryFunc: method is nil but layoutService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Curso string
	}{Ctx: ctx, Curso: curso}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, curso)
}

func (mock *layoutServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Curso string
} {
	mock.lockHistory.RLock()
	defer mock.lockHistory.RUnlock()
	return mock.calls.History
}

var _ syllabusService = &syllabusServiceMock{}

type syllabusServiceMock struct {
	CreateFunc           func(ctx context.Context, input syllabus.CreateInput) (*domain.SyllabusDocument, error)
	GetFunc              func(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	SectionsFunc         func(ctx context.Context, id uuid.UUID) ([]domain.RenderedSection, error)
	UpdateSectionFunc    func(ctx context.Context, id uuid.UUID, section domain.SectionID, raw string) (*domain.SyllabusDocument, error)
	SwitchModeFunc       func(ctx context.Context, id uuid.UUID, section domain.SectionID, mode string) (*domain.SyllabusDocument, error)
	UpdateHeaderFunc     func(ctx context.Context, id uuid.UUID, header domain.Header) (*domain.SyllabusDocument, error)
	SetCustomFunc        func(ctx context.Context, id uuid.UUID, input syllabus.CustomInput) (*domain.SyllabusDocument, error)
	RemoveCustomFunc     func(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	SyncCompetenciesFunc func(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	ValidateWeightFunc   func(weight string) (float64, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input syllabus.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Sections []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateSection []struct {
			Ctx     context.Context
			Id      uuid.UUID
			Section domain.SectionID
			Raw     string
		}
		SwitchMode []struct {
			Ctx     context.Context
			Id      uuid.UUID
			Section domain.SectionID
			Mode    string
		}
		UpdateHeader []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Header domain.Header
		}
		SetCustom []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input syllabus.CustomInput
		}
		RemoveCustom []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SyncCompetencies []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ValidateWeight []struct {
			Weight string
		}
	}
	lockCreate           sync.RWMutex
	lockGet              sync.RWMutex
	lockSections         sync.RWMutex
	lockUpdateSection    sync.RWMutex
	lockSwitchMode       sync.RWMutex
	lockUpdateHeader     sync.RWMutex
	lockSetCustom        sync.RWMutex
	lockRemoveCustom     sync.RWMutex
	lockSyncCompetencies sync.RWMutex
	lockValidateWeight   sync.RWMutex
}

func (mock *syllabusServiceMock) Create(ctx context.Context, input syllabus.CreateInput) (*domain.SyllabusDocument, error) {
	if mock.CreateFunc == nil {
		panic("syllabusServiceMock.CreateFunc: method is nil but syllabusService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input syllabus.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *syllabusServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input syllabus.CreateInput
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *syllabusServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	if mock.GetFunc == nil {
		panic("syllabusServiceMock.GetFunc: method is nil but syllabusService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *syllabusServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *syllabusServiceMock) Sections(ctx context.Context, id uuid.UUID) ([]domain.RenderedSection, error) {
	if mock.SectionsFunc == nil {
		panic("syllabusServiceMock.SectionsFunc: method is nil but syllabusService.Sections was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockSections.Lock()
	mock.calls.Sections = append(mock.calls.Sections, callInfo)
	mock.lockSections.Unlock()
	return mock.SectionsFunc(ctx, id)
}

func (mock *syllabusServiceMock) SectionsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockSections.RLock()
	defer mock.lockSections.RUnlock()
	return mock.calls.Sections
}

func (mock *syllabusServiceMock) UpdateSection(ctx context.Context, id uuid.UUID, section domain.SectionID, raw string) (*domain.SyllabusDocument, error) {
	if mock.UpdateSectionFunc == nil {
		panic("syllabusServiceMock.UpdateSectionFunc: method is nil but syllabusService.UpdateSection was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		Section domain.SectionID
		Raw     string
	}{Ctx: ctx, Id: id, Section: section, Raw: raw}
	mock.lockUpdateSection.Lock()
	mock.calls.UpdateSection = append(mock.calls.UpdateSection, callInfo)
	mock.lockUpdateSection.Unlock()
	return mock.UpdateSectionFunc(ctx, id, section, raw)
}

func (mock *syllabusServiceMock) UpdateSectionCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	Section domain.SectionID
	Raw     string
} {
	mock.lockUpdateSection.RLock()
	defer mock.lockUpdateSection.RUnlock()
	return mock.calls.UpdateSection
}

func (mock *syllabusServiceMock) SwitchMode(ctx context.Context, id uuid.UUID, section domain.SectionID, mode string) (*domain.SyllabusDocument, error) {
	if mock.SwitchModeFunc == nil {
		panic("syllabusServiceMock.SwitchModeFunc: method is nil but syllabusService.SwitchMode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		Section domain.SectionID
		Mode    string
	}{Ctx: ctx, Id: id, Section: section, Mode: mode}
	mock.lockSwitchMode.Lock()
	mock.calls.SwitchMode = append(mock.calls.SwitchMode, callInfo)
	mock.lockSwitchMode.Unlock()
	return mock.SwitchModeFunc(ctx, id, section, mode)
}

func (mock *syllabusServiceMock) SwitchModeCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	Section domain.SectionID
	Mode    string
} {
	mock.lockSwitchMode.RLock()
	defer mock.lockSwitchMode.RUnlock()
	return mock.calls.SwitchMode
}

func (mock *syllabusServiceMock) UpdateHeader(ctx context.Context, id uuid.UUID, header domain.Header) (*domain.SyllabusDocument, error) {
	if mock.UpdateHeaderFunc == nil {
		panic("syllabusServiceMock.UpdateHeaderFunc: method is nil but syllabusService.UpdateHeader was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Header domain.Header
	}{Ctx: ctx, Id: id, Header: header}
	mock.lockUpdateHeader.Lock()
	mock.calls.UpdateHeader = append(mock.calls.UpdateHeader, callInfo)
	mock.lockUpdateHeader.Unlock()
	return mock.UpdateHeaderFunc(ctx, id, header)
}

func (mock *syllabusServiceMock) UpdateHeaderCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Header domain.Header
} {
	mock.lockUpdateHeader.RLock()
	defer mock.lockUpdateHeader.RUnlock()
	return mock.calls.UpdateHeader
}

func (mock *syllabusServiceMock) SetCustom(ctx context.Context, id uuid.UUID, input syllabus.CustomInput) (*domain.SyllabusDocument, error) {
	if mock.SetCustomFunc == nil {
		panic("syllabusServiceMock.SetCustomFunc: method is nil but syllabusService.SetCustom was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input syllabus.CustomInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockSetCustom.Lock()
	mock.calls.SetCustom = append(mock.calls.SetCustom, callInfo)
	mock.lockSetCustom.Unlock()
	return mock.SetCustomFunc(ctx, id, input)
}

func (mock *syllabusServiceMock) SetCustomCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input syllabus.CustomInput
} {
	mock.lockSetCustom.RLock()
	defer mock.lockSetCustom.RUnlock()
	return mock.calls.SetCustom
}

func (mock *syllabusServiceMock) RemoveCustom(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	if mock.RemoveCustomFunc == nil {
		panic("syllabusServiceMock.RemoveCustomFunc: method is nil but syllabusService.RemoveCustom was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockRemoveCustom.Lock()
	mock.calls.RemoveCustom = append(mock.calls.RemoveCustom, callInfo)
	mock.lockRemoveCustom.Unlock()
	return mock.RemoveCustomFunc(ctx, id)
}

func (mock *syllabusServiceMock) RemoveCustomCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockRemoveCustom.RLock()
	defer mock.lockRemoveCustom.RUnlock()
	return mock.calls.RemoveCustom
}

func (mock *syllabusServiceMock) SyncCompetencies(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	if mock.SyncCompetenciesFunc == nil {
		panic("syllabusServiceMock.SyncCompetenciesFunc: method is nil but syllabusService.SyncCompetencies was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockSyncCompetencies.Lock()
	mock.calls.SyncCompetencies = append(mock.calls.SyncCompetencies, callInfo)
	mock.lockSyncCompetencies.Unlock()
	return mock.SyncCompetenciesFunc(ctx, id)
}

func (mock *syllabusServiceMock) SyncCompetenciesCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockSyncCompetencies.RLock()
	defer mock.lockSyncCompetencies.RUnlock()
	return mock.calls.SyncCompetencies
}

func (mock *syllabusServiceMock) ValidateWeight(weight string) (float64, error) {
	if mock.ValidateWeightFunc == nil {
		panic("syllabusServiceMock.ValidateWeightFunc: method is nil but syllabusService.ValidateWeight was just called")
	}
	callInfo := struct {
		Weight string
	}{Weight: weight}
	mock.lockValidateWeight.Lock()
	mock.calls.ValidateWeight = append(mock.calls.ValidateWeight, callInfo)
	mock.lockValidateWeight.Unlock()
	return mock.ValidateWeightFunc(weight)
}

func (mock *syllabusServiceMock) ValidateWeightCalls() []struct {
	Weight string
} {
	mock.lockValidateWeight.RLock()
	defer mock.lockValidateWeight.RUnlock()
	return mock.calls.ValidateWeight
}

var _ bibliographyService = &bibliographyServiceMock{}

type bibliographyServiceMock struct {
	SearchFunc func(ctx context.Context, in bibliography.SearchInput) (*domain.BibSearchResult, error)

	calls struct {
		Search []struct {
			Ctx context.Context
			In  bibliography.SearchInput
		}
	}
	lockSearch sync.RWMutex
}

func (mock *bibliographyServiceMock) Search(ctx context.Context, in bibliography.SearchInput) (*domain.BibSearchResult, error) {
	if mock.SearchFunc == nil {
		panic("bibliographyServiceMock.SearchFunc: method is nil but bibliographyService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  bibliography.SearchInput
	}{Ctx: ctx, In: in}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, in)
}

func (mock *bibliographyServiceMock) SearchCalls() []struct {
	Ctx context.Context
	In  bibliography.SearchInput
} {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}
