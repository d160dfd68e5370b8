// Package scenario loads household scenarios from YAML and plays them
// against the core domain model.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"domainmodel/internal/core"
)

type (
	// Scenario is the decoded YAML document.
	Scenario struct {
		IncomeCurrency string       `yaml:"income_currency"`
		People         []PersonSpec `yaml:"people"`
		Families       []FamilySpec `yaml:"families"`
	}

	PersonSpec struct {
		ID        string   `yaml:"id"`
		FirstName string   `yaml:"first_name"`
		LastName  string   `yaml:"last_name"`
		Age       int      `yaml:"age"`
		Spouse    string   `yaml:"spouse"`
		Job       *JobSpec `yaml:"job"`
	}

	// JobSpec sets exactly one of Hourly or Salary.
	JobSpec struct {
		Title  string      `yaml:"title"`
		Hourly *float64    `yaml:"hourly"`
		Salary *uint       `yaml:"salary"`
		Raises []RaiseSpec `yaml:"raises"`
	}

	// RaiseSpec sets exactly one of Amount or Percent.
	RaiseSpec struct {
		Amount  *float64 `yaml:"amount"`
		Percent *float64 `yaml:"percent"`
	}

	FamilySpec struct {
		Name     string   `yaml:"name"`
		Spouses  []string `yaml:"spouses"`
		Children []string `yaml:"children"`
	}
)

// Load reads and decodes the scenario at path. It does not validate.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	s, err := Parse(b)
	if err != nil {
		var oe *OpError
		if errors.As(err, &oe) {
			oe.File = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes a scenario document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		// An empty document is an empty scenario.
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, decodeError(err)
	}
	return &s, nil
}

// Validate checks ids, references, ages, job shapes and the currency. It
// returns the first problem found.
func (s *Scenario) Validate() error {
	if s.IncomeCurrency != "" {
		if _, err := core.ParseCurrency(s.IncomeCurrency); err != nil {
			return fieldError("income_currency", err.Error())
		}
	}

	ids := make(map[string]struct{}, len(s.People))
	for i, p := range s.People {
		path := fmt.Sprintf("people[%d]", i)
		if strings.TrimSpace(p.ID) == "" {
			return fieldError(path+".id", "empty id")
		}
		if _, dup := ids[p.ID]; dup {
			return fieldError(path+".id", fmt.Sprintf("duplicate id %q", p.ID))
		}
		ids[p.ID] = struct{}{}
		if p.Age < 0 {
			return fieldError(path+".age", fmt.Sprintf("negative age %d", p.Age))
		}
		if p.Job != nil {
			if err := p.Job.validate(path + ".job"); err != nil {
				return err
			}
		}
	}

	for i, p := range s.People {
		if p.Spouse == "" {
			continue
		}
		field := fmt.Sprintf("people[%d].spouse", i)
		if _, ok := ids[p.Spouse]; !ok {
			return refError(field, p.Spouse)
		}
		if p.Spouse == p.ID {
			return fieldError(field, fmt.Sprintf("%q cannot marry themselves", p.ID))
		}
	}

	for i, f := range s.Families {
		path := fmt.Sprintf("families[%d]", i)
		if len(f.Spouses) != 2 {
			return fieldError(path+".spouses", fmt.Sprintf("need exactly 2 spouses, got %d", len(f.Spouses)))
		}
		for j, id := range f.Spouses {
			if _, ok := ids[id]; !ok {
				return refError(fmt.Sprintf("%s.spouses[%d]", path, j), id)
			}
		}
		if f.Spouses[0] == f.Spouses[1] {
			return fieldError(path+".spouses", fmt.Sprintf("%q cannot marry themselves", f.Spouses[0]))
		}
		for j, id := range f.Children {
			if _, ok := ids[id]; !ok {
				return refError(fmt.Sprintf("%s.children[%d]", path, j), id)
			}
		}
	}
	return nil
}

// Currency returns the scenario's income currency, or fallback when unset.
func (s *Scenario) Currency(fallback core.Currency) core.Currency {
	if s.IncomeCurrency == "" {
		return fallback
	}
	c, err := core.ParseCurrency(s.IncomeCurrency)
	if err != nil {
		return fallback
	}
	return c
}

func (j *JobSpec) validate(path string) error {
	if (j.Hourly == nil) == (j.Salary == nil) {
		return fieldError(path, "set exactly one of hourly or salary")
	}
	for i, r := range j.Raises {
		if (r.Amount == nil) == (r.Percent == nil) {
			return fieldError(fmt.Sprintf("%s.raises[%d]", path, i), "set exactly one of amount or percent")
		}
	}
	return nil
}

// build returns the job described by j with its raises applied in order.
func (j *JobSpec) build() *core.Job {
	var t core.JobType
	if j.Hourly != nil {
		t = core.Hourly{Rate: *j.Hourly}
	} else {
		t = core.Salary{Amount: *j.Salary}
	}
	job := core.NewJob(j.Title, t)
	for _, r := range j.Raises {
		if r.Amount != nil {
			job.RaiseByAmount(*r.Amount)
		} else {
			job.RaiseByPercent(*r.Percent)
		}
	}
	return job
}
