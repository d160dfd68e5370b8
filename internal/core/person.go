package core

import "fmt"

// AdultAge is the minimum age for holding a job or a spouse.
const AdultAge = 18

// Person is an individual with an optional job and an optional spouse.
// Both relations are gated on age at assignment time and are not
// re-checked afterwards.
type Person struct {
	FirstName string
	LastName  string
	Age       int

	job    *Job
	spouse *Person
}

// NewPerson returns a person with no job and no spouse.
func NewPerson(firstName, lastName string, age int) *Person {
	return &Person{FirstName: firstName, LastName: lastName, Age: age}
}

// Job returns the current job, or nil.
func (p *Person) Job() *Job {
	return p.job
}

// SetJob assigns j when the person is an adult and reports whether it did.
// A rejected assignment leaves the current job untouched. Passing nil
// clears the job, subject to the same age gate.
func (p *Person) SetJob(j *Job) bool {
	if p.Age < AdultAge {
		return false
	}
	p.job = j
	return true
}

// Spouse returns the current spouse, or nil.
func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse assigns s when both people are adults and reports whether it
// did. Any failed assignment, including s == nil, clears the current spouse.
// Only p is updated; the relation is not mirrored onto s.
func (p *Person) SetSpouse(s *Person) bool {
	if p.Age < AdultAge || s == nil || s.Age < AdultAge {
		p.spouse = nil
		return false
	}
	p.spouse = s
	return true
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// String describes the person. The format is stable:
//
//	[Person: firstName:Ted lastName:Neward age:45 job:Lecturer spouse:none]
func (p *Person) String() string {
	job, spouse := "none", "none"
	if p.job != nil {
		job = p.job.Title()
	}
	if p.spouse != nil {
		spouse = p.spouse.FirstName
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		p.FirstName, p.LastName, p.Age, job, spouse)
}
