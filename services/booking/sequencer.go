package booking

import "swiftdrop/models"

// GateFunc checks whether the draft may advance past one step. A nil return
// allows the transition.
type GateFunc func(d models.BookingDraft) error

// GateTable maps (service type, step index) to the gate guarding the advance
// out of that step. Steps without an entry are ungated; that is the default
// for every step, matching observed wizard behaviour.
type GateTable map[models.ServiceTypeID]map[int]GateFunc

// DefaultGates returns the gating the standard wizard variant applies: the
// pickup and dropoff steps require a street address before continuing. All
// other steps are ungated.
func DefaultGates() GateTable {
	return GateTable{
		models.ServiceStandard: {
			1: func(d models.BookingDraft) error {
				if d.Pickup.StreetAddress == "" {
					return FieldErrors{{Field: "pickupDetails.streetAddress", Message: "street address is required"}}
				}
				return nil
			},
			2: func(d models.BookingDraft) error {
				if d.Dropoff.StreetAddress == "" {
					return FieldErrors{{Field: "dropoffDetails.streetAddress", Message: "street address is required"}}
				}
				return nil
			},
		},
	}
}

// Sequencer is the state machine driving a wizard forward and backward
// through the step sequence the catalog defines for the selected service
// type. A failed transition mutates nothing.
type Sequencer struct {
	store *DraftStore
	gates GateTable
}

// NewSequencer builds a sequencer over the store with the default gates.
func NewSequencer(store *DraftStore) *Sequencer {
	return &Sequencer{store: store, gates: DefaultGates()}
}

// NewSequencerWithGates builds a sequencer with a caller-supplied gate table.
func NewSequencerWithGates(store *DraftStore, gates GateTable) *Sequencer {
	return &Sequencer{store: store, gates: gates}
}

// SelectService moves from NoServiceSelected into the first step of the
// chosen service type. Changing an already-selected type requires retreating
// back out of the wizard first.
func (q *Sequencer) SelectService(id models.ServiceTypeID) error {
	if q.store.draft.ServiceType != "" {
		return ErrServiceAlreadySelected
	}
	return q.store.SelectServiceType(id)
}

// steps resolves the current step list; empty when nothing is selected.
func (q *Sequencer) steps() []models.StepID {
	if q.store.draft.ServiceType == "" {
		return nil
	}
	steps, err := Steps(q.store.draft.ServiceType)
	if err != nil {
		return nil
	}
	return steps
}

// Steps exposes the current step sequence to the presentation layer.
func (q *Sequencer) Steps() []models.StepID {
	return q.steps()
}

// Current returns the step the wizard is on. ok is false before a service
// type has been selected.
func (q *Sequencer) Current() (step models.StepID, index int, ok bool) {
	steps := q.steps()
	if steps == nil {
		return "", 0, false
	}
	i := q.store.draft.CurrentStep
	return steps[i], i, true
}

// AtTerminal reports whether the wizard sits on the final review step.
func (q *Sequencer) AtTerminal() bool {
	steps := q.steps()
	return steps != nil && q.store.draft.CurrentStep == len(steps)-1
}

// Advance moves one step forward, first running the configured gate for the
// current step.
func (q *Sequencer) Advance() error {
	steps := q.steps()
	if steps == nil {
		return ErrNoServiceSelected
	}
	i := q.store.draft.CurrentStep
	if i+1 >= len(steps) {
		return ErrAtTerminalStep
	}
	if gates, ok := q.gates[q.store.draft.ServiceType]; ok {
		if gate, ok := gates[i]; ok {
			if err := gate(q.store.draft); err != nil {
				return err
			}
		}
	}
	q.store.draft.CurrentStep = i + 1
	return nil
}

// Retreat moves one step back. From the first step it backs out of the
// wizard entirely, clearing the service selection but keeping common fields.
func (q *Sequencer) Retreat() error {
	if q.store.draft.ServiceType == "" {
		return ErrNoServiceSelected
	}
	if q.store.draft.CurrentStep > 0 {
		q.store.draft.CurrentStep--
		return nil
	}
	q.store.clearSelection()
	return nil
}

// JumpTo revisits an already-completed step. Jumping ahead of the current
// step is never allowed.
func (q *Sequencer) JumpTo(index int) error {
	steps := q.steps()
	if steps == nil {
		return ErrNoServiceSelected
	}
	if index < 0 || index > q.store.draft.CurrentStep {
		return ErrCannotSkipAhead
	}
	q.store.draft.CurrentStep = index
	return nil
}
