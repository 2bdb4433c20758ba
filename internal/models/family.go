package models

import "slices"

// Family aggregates a couple, their marriage fact, and their children.
// Families carry no ordering of their own; children are resorted by birth
// date on demand and otherwise keep their current order.
type Family struct {
	ID       string
	Husband  *Person
	Wife     *Person
	Marriage *Fact
	Children []*Person
}

// SortChildrenByBirth stably reorders the children list by birth fact.
func (f *Family) SortChildrenByBirth() {
	slices.SortStableFunc(f.Children, func(a, b *Person) int {
		var af, bf *Fact
		if a != nil {
			af = a.Birth
		}
		if b != nil {
			bf = b.Birth
		}
		return CompareFacts(af, bf)
	})
}
