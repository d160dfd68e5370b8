package scenario

import (
	"context"

	"domainmodel/internal/core"
	"domainmodel/internal/log"
)

// EventKind names a silent rejection by the domain model.
type EventKind string

const (
	EventJobRejected     EventKind = "job_rejected"
	EventSpouseCleared   EventKind = "spouse_cleared"
	EventFamilyNotFormed EventKind = "family_not_formed"
	EventChildRejected   EventKind = "child_rejected"
)

// Event records an assignment the domain model declined.
type Event struct {
	Kind   EventKind
	Person string // person id
	Family string // family name, when relevant
}

// NamedFamily is a family together with its scenario name.
type NamedFamily struct {
	Name   string
	Family *core.Family
}

// Household is the result of playing a scenario.
type Household struct {
	People         map[string]*core.Person
	Order          []string // person ids in document order
	Families       []NamedFamily
	Events         []Event
	IncomeCurrency core.Currency
}

// Person returns the person with the given id, or nil.
func (h *Household) Person(id string) *core.Person {
	return h.People[id]
}

// Everyone returns all people in document order.
func (h *Household) Everyone() []*core.Person {
	out := make([]*core.Person, 0, len(h.Order))
	for _, id := range h.Order {
		out = append(out, h.People[id])
	}
	return out
}

// Build validates s and plays it: people are created, jobs assigned,
// spouse references applied, then families formed and children added, each
// in document order. Rejections by the domain model are logged and
// recorded as events, not returned as errors.
func (s *Scenario) Build(ctx context.Context, fallback core.Currency) (*Household, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx).WithComponent(log.ComponentScenario)
	h := &Household{
		People:         make(map[string]*core.Person, len(s.People)),
		Order:          make([]string, 0, len(s.People)),
		IncomeCurrency: s.Currency(fallback),
	}

	for _, ps := range s.People {
		h.People[ps.ID] = core.NewPerson(ps.FirstName, ps.LastName, ps.Age)
		h.Order = append(h.Order, ps.ID)
	}

	for _, ps := range s.People {
		if ps.Job == nil {
			continue
		}
		p := h.People[ps.ID]
		job := ps.Job.build()
		if !p.SetJob(job) {
			h.record(ctx, logger, Event{Kind: EventJobRejected, Person: ps.ID},
				log.FieldJobTitle, job.Title())
			continue
		}
		logger.DebugContext(ctx, "Job assigned",
			log.FieldPerson, p.FullName(),
			log.FieldJobTitle, job.Title())
	}

	for _, ps := range s.People {
		if ps.Spouse == "" {
			continue
		}
		if !h.People[ps.ID].SetSpouse(h.People[ps.Spouse]) {
			h.record(ctx, logger, Event{Kind: EventSpouseCleared, Person: ps.ID},
				log.FieldSpouse, ps.Spouse)
		}
	}

	for _, fs := range s.Families {
		f := core.NewFamily(h.People[fs.Spouses[0]], h.People[fs.Spouses[1]])
		if !f.Formed() {
			h.record(ctx, logger, Event{Kind: EventFamilyNotFormed, Person: fs.Spouses[0], Family: fs.Name},
				log.FieldSpouse, fs.Spouses[1])
		}
		for _, id := range fs.Children {
			if !f.HaveChild(h.People[id]) {
				h.record(ctx, logger, Event{Kind: EventChildRejected, Person: id, Family: fs.Name})
			}
		}
		h.Families = append(h.Families, NamedFamily{Name: fs.Name, Family: f})
		logger.InfoContext(ctx, "Family built",
			log.FieldFamily, fs.Name,
			log.FieldMembers, f.Len(),
			log.FieldIncome, f.HouseholdIncome())
	}

	return h, nil
}

func (h *Household) record(ctx context.Context, logger *log.Logger, e Event, args ...any) {
	h.Events = append(h.Events, e)
	fields := log.NewFields().WithOperation(log.OpBuild).WithPerson(h.People[e.Person])
	if e.Family != "" {
		fields[log.FieldFamily] = e.Family
	}
	logger.WarnContext(ctx, "Assignment rejected", append(append([]any{"event", string(e.Kind)}, fields.ToSlice()...), args...)...)
}
