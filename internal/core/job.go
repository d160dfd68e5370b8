package core

import "fmt"

type (
	// JobType is the compensation scheme of a Job: Hourly or Salary.
	JobType interface {
		isJobType()
	}

	// Hourly pays Rate per hour worked. Rate may be negative.
	Hourly struct {
		Rate float64
	}

	// Salary pays a fixed Amount regardless of hours worked.
	Salary struct {
		Amount uint
	}

	// Job is a titled position with a mutable compensation scheme.
	Job struct {
		title string
		typ   JobType
	}
)

func (Hourly) isJobType() {}
func (Salary) isJobType() {}

// NewJob returns a job with the given title and compensation. A nil type panics.
func NewJob(title string, t JobType) *Job {
	if t == nil {
		panic("core: nil job type")
	}
	return &Job{title: title, typ: t}
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Type returns the current compensation scheme.
func (j *Job) Type() JobType {
	return j.typ
}

// CalculateIncome returns the income for the given hours. Salaried jobs
// ignore hours; hourly income is truncated toward zero.
func (j *Job) CalculateIncome(hours int) int {
	switch t := j.typ.(type) {
	case Salary:
		return int(t.Amount)
	case Hourly:
		return int(t.Rate * float64(hours))
	default:
		panic(fmt.Sprintf("core: unknown job type %T", t))
	}
}

// RaiseByAmount adds amount to the hourly rate or salary. Salaries are
// truncated and never drop below zero.
func (j *Job) RaiseByAmount(amount float64) {
	switch t := j.typ.(type) {
	case Salary:
		j.typ = Salary{Amount: toSalary(float64(t.Amount) + amount)}
	case Hourly:
		j.typ = Hourly{Rate: t.Rate + amount}
	default:
		panic(fmt.Sprintf("core: unknown job type %T", t))
	}
}

// RaiseByPercent scales the hourly rate or salary by (1 + percent), where
// 0.1 means ten percent. Salaries are truncated and never drop below zero.
func (j *Job) RaiseByPercent(percent float64) {
	switch t := j.typ.(type) {
	case Salary:
		j.typ = Salary{Amount: toSalary(float64(t.Amount) * (1 + percent))}
	case Hourly:
		j.typ = Hourly{Rate: t.Rate * (1 + percent)}
	default:
		panic(fmt.Sprintf("core: unknown job type %T", t))
	}
}

func toSalary(v float64) uint {
	if v <= 0 {
		return 0
	}
	return uint(v)
}
