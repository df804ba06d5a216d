package domain

import (
	"time"

	"github.com/google/uuid"
)

// LayoutModel is a named configuration of section order, visibility and
// custom-section policy for one course. At most one model per course is active.
type LayoutModel struct {
	ID              uuid.UUID          `json:"id"`
	Curso           string             `json:"curso"`
	Nome            string             `json:"nome"`
	TabsOrder       []SectionID        `json:"tabsOrder"`
	TabsVisibility  map[SectionID]bool `json:"tabsVisibility"`
	AllowCustomTabs bool               `json:"allowCustomTabs"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	ActivatedAt     *time.Time         `json:"activatedAt,omitempty"`
}

// IsVisible reports the stored visibility of a section; absent means visible.
func (m *LayoutModel) IsVisible(id SectionID) bool {
	if m == nil || m.TabsVisibility == nil {
		return true
	}
	visible, ok := m.TabsVisibility[id]
	return !ok || visible
}

// CustomTabsAllowed reports whether documents governed by m may carry a
// custom section. A nil model (no active layout) allows it.
func (m *LayoutModel) CustomTabsAllowed() bool {
	return m == nil || m.AllowCustomTabs
}

// LayoutAction is the kind of transition recorded in layout history.
type LayoutAction string

const (
	LayoutActionCreated   LayoutAction = "created"
	LayoutActionUpdated   LayoutAction = "updated"
	LayoutActionActivated LayoutAction = "activated"
	LayoutActionDeleted   LayoutAction = "deleted"
)

func (a LayoutAction) String() string { return string(a) }

func (a LayoutAction) IsValid() bool {
	switch a {
	case LayoutActionCreated, LayoutActionUpdated, LayoutActionActivated, LayoutActionDeleted:
		return true
	}
	return false
}

// LayoutHistoryEntry is an append-only audit record of a layout model
// transition. It outlives the model it refers to.
type LayoutHistoryEntry struct {
	ID          uuid.UUID    `json:"id"`
	Curso       string       `json:"curso"`
	ModelID     uuid.UUID    `json:"modelId"`
	Action      LayoutAction `json:"action"`
	Snapshot    LayoutModel  `json:"snapshot"`
	PerformedBy string       `json:"performedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}
