package core

// HouseholdHours is the yearly hour baseline used for household income.
// Salaried members ignore it.
const HouseholdHours = 2000

// ParentAge is the age at least one founding spouse must exceed before the
// family can add a child.
const ParentAge = 21

// Family is a married couple plus any children added later. Members only
// ever grow; the first two are the founding spouses.
type Family struct {
	members []*Person
}

// NewFamily marries a and b and returns their family.
//
// Both must be unmarried. Otherwise the returned family has no members and
// no one is married: there is no error. Formation links the spouses
// directly and does not apply the age gate of Person.SetSpouse.
func NewFamily(a, b *Person) *Family {
	f := &Family{}
	if a == nil || b == nil || a.spouse != nil || b.spouse != nil {
		return f
	}
	a.spouse = b
	b.spouse = a
	f.members = []*Person{a, b}
	return f
}

// Formed reports whether construction married the founding spouses.
func (f *Family) Formed() bool {
	return len(f.members) >= 2
}

// Members returns the members in insertion order. The slice is a copy.
func (f *Family) Members() []*Person {
	return append([]*Person(nil), f.members...)
}

// Len returns the number of members.
func (f *Family) Len() int {
	return len(f.members)
}

// HaveChild appends child when at least one founding spouse is older than
// ParentAge and reports whether it did. An unformed family never accepts
// children.
func (f *Family) HaveChild(child *Person) bool {
	if child == nil || !f.Formed() {
		return false
	}
	if f.members[0].Age > ParentAge || f.members[1].Age > ParentAge {
		f.members = append(f.members, child)
		return true
	}
	return false
}

// HouseholdIncome sums every employed member's income over HouseholdHours.
func (f *Family) HouseholdIncome() int {
	total := 0
	for _, p := range f.members {
		if p.job != nil {
			total += p.job.CalculateIncome(HouseholdHours)
		}
	}
	return total
}
