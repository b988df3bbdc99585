package model

import "sort"

type CompanySet map[string]struct{}

func NewCompanySet(numbers ...string) CompanySet {
	s := make(CompanySet, len(numbers))
	for _, n := range numbers {
		s[n] = struct{}{}
	}
	return s
}

func (s CompanySet) Add(n string) {
	s[n] = struct{}{}
}

func (s CompanySet) Contains(n string) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members in ascending order.
func (s CompanySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// AssociationGraph maps a BFS level to the companies reached at exactly that
// level. The same company may appear at more than one level.
type AssociationGraph map[int]CompanySet

// Levels returns the populated levels as sorted slices keyed by level.
func (g AssociationGraph) Levels() map[int][]string {
	out := make(map[int][]string, len(g))
	for level, set := range g {
		out[level] = set.Sorted()
	}
	return out
}
