package form

import "sync"

// Editor is the single owner of the live form state. Every read and write goes
// through it, and asynchronous lookup results are applied against the state
// current at resolution time, never against a snapshot captured when the
// request was issued.
//
// Each registered field group carries a monotonically increasing sequence
// number. A lookup takes a ticket with Begin before it queries; Apply only
// merges the response while that ticket is still the newest for the group. A
// newer lookup, or a direct user edit of any field in the group, invalidates
// everything still in flight.
type Editor struct {
	mu     sync.Mutex
	state  State
	seq    map[string]uint64
	groups map[string][]string
}

func NewEditor(initial State) *Editor {
	return &Editor{
		state:  initial,
		seq:    make(map[string]uint64),
		groups: make(map[string][]string),
	}
}

// RegisterGroup declares which form fields a lookup group writes to, so
// direct edits of those fields supersede in-flight responses.
func (e *Editor) RegisterGroup(name string, fields ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.groups[name] = fields
}

// State returns the current snapshot.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetField applies a direct user edit and invalidates any lookup group that
// writes to the edited field.
func (e *Editor) SetField(field, value string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = e.state.Set(field, value)
	for group, fields := range e.groups {
		for _, f := range fields {
			if f == field {
				e.seq[group]++
				break
			}
		}
	}
	return e.state
}

// Begin issues a ticket for a new lookup on the group, superseding any
// response still in flight.
func (e *Editor) Begin(group string) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq[group]++
	return e.seq[group]
}

// Apply merges a lookup response. The patch is dropped when the ticket is no
// longer the newest for its group; the returned bool reports whether it took
// effect.
func (e *Editor) Apply(group string, ticket uint64, patch map[string]string) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.seq[group] != ticket {
		return e.state, false
	}
	e.state = e.state.ApplyPatch(patch)
	return e.state, true
}

// Update runs an arbitrary transition against the latest state under the
// editor's lock.
func (e *Editor) Update(fn func(State) State) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = fn(e.state)
	return e.state
}
