package log

import "domainmodel/internal/core"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldPath      = "path"
	FieldPerson    = "person"
	FieldAge       = "age"
	FieldSpouse    = "spouse"
	FieldFamily    = "family"
	FieldMembers   = "members"
	FieldJobTitle  = "job_title"
	FieldAmount    = "amount"
	FieldCurrency  = "currency"
	FieldIncome    = "income"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentConfig   = "config"
	ComponentScenario = "scenario"
	ComponentReport   = "report"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpValidate = "validate"
	OpBuild    = "build"
	OpConvert  = "convert"
	OpRender   = "render"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithPerson adds the person's full name and age
func (f LogFields) WithPerson(p *core.Person) LogFields {
	if p != nil {
		f[FieldPerson] = p.FullName()
		f[FieldAge] = p.Age
	}
	return f
}

// WithMoney adds amount and currency fields
func (f LogFields) WithMoney(m core.Money) LogFields {
	f[FieldAmount] = m.Amount()
	f[FieldCurrency] = string(m.Currency())
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
