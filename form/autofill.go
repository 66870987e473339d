package form

import (
	"context"
	"strconv"
	"strings"
	"time"

	"transportbilty/models"
)

// Source is the slice of the record store the autofill pipeline needs.
// repository.BiltyRepository satisfies it.
type Source interface {
	LatestByField(ctx context.Context, field, value string) (*models.Bilty, error)
	MostRecentBilty(ctx context.Context) (*models.Bilty, error)
}

// DefaultLookupTimeout bounds every store call made by the pipeline. A timeout
// behaves exactly like any other store error: the form keeps what it has.
const DefaultLookupTimeout = 5 * time.Second

// Selecting a suggestion for one of these fields pulls a projection of the
// latest matching record into the form.
var triggerGroups = map[string][]string{
	FieldCityCode: {
		FieldCity, FieldTransportName, FieldTransportGST, FieldTransportMobile, FieldRate,
	},
	FieldConsignorName: {FieldConsignorGST, FieldConsignorMobile},
	FieldConsigneeName: {FieldConsigneeGST, FieldConsigneeMobile},
}

// LookupFields returns the fields autofilled when a suggestion for trigger is
// selected, and whether trigger fires a lookup at all.
func LookupFields(trigger string) ([]string, bool) {
	fields, ok := triggerGroups[trigger]
	return fields, ok
}

// Projection restricts a record to the given form fields, as display text.
// Zero numeric values and empty strings come out empty so that the non-clobber
// merge skips them.
func Projection(rec *models.Bilty, fields []string) map[string]string {
	number := func(v float64) string {
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	patch := make(map[string]string, len(fields))
	for _, f := range fields {
		switch f {
		case FieldCity:
			patch[f] = rec.City
		case FieldTransportName:
			patch[f] = rec.TransportName
		case FieldTransportGST:
			patch[f] = rec.TransportGST
		case FieldTransportMobile:
			patch[f] = rec.TransportMobile
		case FieldRate:
			patch[f] = number(rec.Rate)
		case FieldConsignorGST:
			patch[f] = rec.ConsignorGST
		case FieldConsignorMobile:
			patch[f] = rec.ConsignorMobile
		case FieldConsigneeGST:
			patch[f] = rec.ConsigneeGST
		case FieldConsigneeMobile:
			patch[f] = rec.ConsigneeMobile
		}
	}
	return patch
}

// Autofill drives the lookup side of the entry form: suggestion-selection
// lookups for the three trigger fields and the one-shot charge seeding at
// form initialization. Store read errors are always swallowed, the form
// simply keeps its current values.
type Autofill struct {
	Source  Source
	Editor  *Editor
	Timeout time.Duration
}

func NewAutofill(src Source, ed *Editor) *Autofill {
	for trigger, fields := range triggerGroups {
		ed.RegisterGroup(trigger, fields...)
	}
	return &Autofill{Source: src, Editor: ed, Timeout: DefaultLookupTimeout}
}

func (a *Autofill) timeout() time.Duration {
	if a.Timeout > 0 {
		return a.Timeout
	}
	return DefaultLookupTimeout
}

// OnSuggestionSelected fires exactly once per explicit suggestion selection.
// It fetches the newest record whose trigger field equals value and merges the
// projection into the current form state, non-clobber. Safe to call from its
// own goroutine; stale responses are discarded by ticket.
func (a *Autofill) OnSuggestionSelected(ctx context.Context, trigger, value string) State {
	fields, ok := triggerGroups[trigger]
	if !ok || strings.TrimSpace(value) == "" {
		return a.Editor.State()
	}

	ticket := a.Editor.Begin(trigger)

	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()
	rec, err := a.Source.LatestByField(ctx, trigger, value)
	if err != nil || rec == nil {
		return a.Editor.State()
	}

	state, _ := a.Editor.Apply(trigger, ticket, Projection(rec, fields))
	return state
}

// SeedCharges runs once when a fresh form opens: the four standing charges
// default to the values of the most recently created record, without touching
// anything the user already changed.
func (a *Autofill) SeedCharges(ctx context.Context) State {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()
	rec, err := a.Source.MostRecentBilty(ctx)
	if err != nil || rec == nil {
		return a.Editor.State()
	}

	charge := func(v float64) string {
		if v == 0 {
			return ""
		}
		return FormatAmount(v)
	}
	return a.Editor.Update(func(s State) State {
		return s.SeedCharges(
			charge(rec.LabourCharge),
			charge(rec.BiltyCharge),
			charge(rec.TollTax),
			charge(rec.PF),
		)
	})
}
