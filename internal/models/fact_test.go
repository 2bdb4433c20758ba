package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactTypeForTag(t *testing.T) {
	cases := map[string]FactType{
		"BIRT": FactBirth,
		"DEAT": FactDeath,
		"MARR": FactMarriage,
		"RESI": FactResidence,
		"OCCU": FactOccupation,
		"CENS": FactCensus,
		"BURI": FactBurial,
		"IMMI": FactImmigration,
	}
	for tag, want := range cases {
		t.Run(tag, func(t *testing.T) {
			ft, ok := FactTypeForTag(tag)
			assert.True(t, ok)
			assert.Equal(t, want, ft)
		})
	}

	ft, ok := FactTypeForTag("NAME")
	assert.False(t, ok)
	assert.Equal(t, FactUnknown, ft)
}

func TestFactTypeIsValid(t *testing.T) {
	for _, ft := range ValidFactTypes {
		t.Run(string(ft), func(t *testing.T) {
			assert.True(t, ft.IsValid())
		})
	}
	assert.False(t, FactUnknown.IsValid())
	assert.False(t, FactType("bogus").IsValid())
}

func TestFactTypeLabel(t *testing.T) {
	assert.Equal(t, "Birth", FactBirth.Label())
	assert.Equal(t, "Marriage", FactMarriage.Label())
	assert.Equal(t, "Naturalization", FactNaturalized.Label())
	assert.Equal(t, "Unknown", FactUnknown.Label())
	assert.Equal(t, "Unknown", FactType("bogus").Label())
}

func TestSexMapping(t *testing.T) {
	assert.Equal(t, SexMale, SexForTag("M"))
	assert.Equal(t, SexFemale, SexForTag(" f "))
	assert.Equal(t, SexUnknown, SexForTag(""))
	assert.Equal(t, SexUnknown, SexForTag("X"))

	assert.Equal(t, "Husband", SexMale.SpouseLabel())
	assert.Equal(t, "Wife", SexFemale.SpouseLabel())
	assert.Equal(t, "Spouse", SexUnknown.SpouseLabel())

	assert.Equal(t, "Father", SexMale.ParentLabel())
	assert.Equal(t, "Mother", SexFemale.ParentLabel())
	assert.Equal(t, "Parent", SexUnknown.ParentLabel())
}
