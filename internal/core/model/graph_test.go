package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanySet(t *testing.T) {
	s := NewCompanySet("C", "A")
	s.Add("B")
	s.Add("A")

	assert.Len(t, s, 3)
	assert.True(t, s.Contains("B"))
	assert.False(t, s.Contains("D"))
	assert.Equal(t, []string{"A", "B", "C"}, s.Sorted())
}

func TestAssociationGraphLevels(t *testing.T) {
	g := AssociationGraph{
		0: NewCompanySet("SEED"),
		1: NewCompanySet("Y", "SEED", "X"),
		2: NewCompanySet(),
	}

	assert.Equal(t, map[int][]string{
		0: {"SEED"},
		1: {"SEED", "X", "Y"},
		2: {},
	}, g.Levels())
}
