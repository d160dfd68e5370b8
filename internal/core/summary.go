package core

// MemberIncome is one member's yearly income.
type MemberIncome struct {
	Name     string
	JobTitle string // empty when unemployed
	Income   Money
}

// HouseholdSummary is a compact breakdown of a family's income.
type HouseholdSummary struct {
	Members []MemberIncome
	Total   Money
}

// Summary reports every member's income, denominated in incomeCurrency,
// converted into reportCurrency. The total is converted once from the
// unconverted sum, so it may differ from the sum of the converted rows by
// truncation. Both currencies must be supported or Summary panics.
func (f *Family) Summary(incomeCurrency, reportCurrency Currency) HouseholdSummary {
	s := HouseholdSummary{
		Members: make([]MemberIncome, 0, len(f.members)),
		Total:   NewMoney(f.HouseholdIncome(), string(incomeCurrency)).Convert(string(reportCurrency)),
	}
	for _, p := range f.members {
		mi := MemberIncome{Name: p.FullName()}
		income := 0
		if p.job != nil {
			mi.JobTitle = p.job.Title()
			income = p.job.CalculateIncome(HouseholdHours)
		}
		mi.Income = NewMoney(income, string(incomeCurrency)).Convert(string(reportCurrency))
		s.Members = append(s.Members, mi)
	}
	return s
}
