// Package editor tracks the create/edit interaction flow of the map
// UI: whether the user is browsing, picking a map location, or filling
// a form, and how the responsive side panel follows along.
package editor

import (
	"github.com/totonoe/sauna-itta/internal/visit"
)

// Mode is the current step of the create/edit flow.
type Mode string

const (
	// ModeList is the initial state: browsing, no edit in progress.
	ModeList Mode = "list"
	// ModeCreatingPick means a new entry was started and the user must
	// tap the map to choose its location.
	ModeCreatingPick Mode = "creating:pick"
	// ModeCreatingForm means a location was chosen and the creation
	// form is visible.
	ModeCreatingForm Mode = "creating:form"
	// ModeEditing means an existing record is open in the form.
	ModeEditing Mode = "editing"
)

// State is the transient editor snapshot. Never persisted.
type State struct {
	Mode             Mode          `json:"mode"`
	EditingID        string        `json:"editingId,omitempty"`
	SelectedLocation *visit.LatLng `json:"selectedLocation"`
	SidebarExpanded  bool          `json:"isSidebarExpanded"`
	MapTarget        *visit.LatLng `json:"mapTarget"`
	Narrow           bool          `json:"narrow"`
}

// Machine applies the legal editor transitions. Not safe for
// concurrent use on its own; the web server serializes access.
type Machine struct {
	s State
}

// New returns a machine in list mode. On narrow layouts the side
// panel starts collapsed.
func New(narrow bool) *Machine {
	return &Machine{s: State{
		Mode:            ModeList,
		SidebarExpanded: !narrow,
		Narrow:          narrow,
	}}
}

// State returns the current snapshot.
func (m *Machine) State() State {
	return m.s
}

// SetNarrow records the layout class reported by the client. It
// changes no other state; the narrow flag only steers side effects of
// later transitions.
func (m *Machine) SetNarrow(narrow bool) {
	m.s.Narrow = narrow
}

// StartCreate begins a new entry: the user must now tap the map. Any
// staged location or editing id is cleared, and on narrow layouts the
// side panel collapses so the map is fully visible for tapping.
func (m *Machine) StartCreate() {
	m.s.Mode = ModeCreatingPick
	m.s.EditingID = ""
	m.s.SelectedLocation = nil
	if m.s.Narrow {
		m.s.SidebarExpanded = false
	}
}

// StartEdit opens an existing record in the form from any state. Its
// coordinate is staged as the selected location and as the map target
// (the map pans to it), and the side panel expands unconditionally.
func (m *Machine) StartEdit(r visit.Record) {
	loc := r.Location()
	m.s.Mode = ModeEditing
	m.s.EditingID = r.ID
	m.s.SelectedLocation = &loc
	target := loc
	m.s.MapTarget = &target
	m.s.SidebarExpanded = true
}

// SelectLocation stages a coordinate for the in-progress create or
// edit. Only creating:pick advances to creating:form; in editing or
// creating:form the mode is kept so re-picking a location does not
// lose form values. On narrow layouts the side panel re-expands once
// a location is chosen.
func (m *Machine) SelectLocation(loc visit.LatLng) {
	if m.s.Mode == ModeCreatingPick {
		m.s.Mode = ModeCreatingForm
	}
	m.s.SelectedLocation = &loc
	if m.s.Narrow {
		m.s.SidebarExpanded = true
	}
}

// CancelEdit returns to list mode from any state, clearing the
// editing id and staged location. On narrow layouts the side panel
// ends up expanded after a completed save or delete (so the updated
// list is visible) and collapsed after a pure cancel.
func (m *Machine) CancelEdit(completed bool) {
	m.s.Mode = ModeList
	m.s.EditingID = ""
	m.s.SelectedLocation = nil
	if m.s.Narrow {
		m.s.SidebarExpanded = completed
	}
}

// ToggleSidebar flips panel visibility without changing mode.
func (m *Machine) ToggleSidebar() {
	m.s.SidebarExpanded = !m.s.SidebarExpanded
}
