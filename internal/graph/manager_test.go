package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.ged")
	require.NoError(t, os.WriteFile(path, []byte(fixtureGedcom), 0o644))
	return path
}

func TestManagerOpenClose(t *testing.T) {
	m := NewManager(testLogger())

	assert.False(t, m.IsOpen())
	assert.Empty(t, m.Filename())

	path := writeFixture(t)
	require.NoError(t, m.Open(path))

	assert.True(t, m.IsOpen())
	assert.Equal(t, path, m.Filename())
	assert.Len(t, m.People(), 4)
	assert.Len(t, m.Families(), 2)
	assert.Len(t, m.Sources(), 2)
	assert.Len(t, m.Citations(), 2)
	assert.Len(t, m.Media(), 1)
	assert.NotNil(t, m.PersonByID("I1"))

	m.Close()

	assert.False(t, m.IsOpen())
	assert.Empty(t, m.Filename())
	assert.Empty(t, m.People())
	assert.Empty(t, m.PeopleSorted())
	assert.Empty(t, m.Families())
	assert.Empty(t, m.Sources())
	assert.Empty(t, m.Citations())
	assert.Empty(t, m.Media())
	assert.Nil(t, m.PersonByID("I1"))
	assert.Nil(t, m.FamilyByID("F1"))
	assert.Nil(t, m.FactByID("anything"))
	assert.Nil(t, m.SourceByID("S1"))
	assert.Empty(t, m.CitationsForFact("anything"))
	assert.False(t, m.IsEventSourced(nil, "1900"))

	// Closing twice is harmless.
	m.Close()
}

func TestManagerOpenMissingFile(t *testing.T) {
	m := NewManager(testLogger())
	err := m.Open(filepath.Join(t.TempDir(), "nope.ged"))
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.False(t, m.IsOpen())
}

func TestManagerOpenReplacesOpenGraph(t *testing.T) {
	m := NewManager(testLogger())

	first := writeFixture(t)
	require.NoError(t, m.Open(first))

	second := filepath.Join(t.TempDir(), "small.ged")
	require.NoError(t, os.WriteFile(second, []byte("0 @I1@ INDI\n1 NAME Jane /Doe/\n"), 0o644))
	require.NoError(t, m.Open(second))

	assert.Equal(t, second, m.Filename())
	assert.Len(t, m.People(), 1)
	assert.Equal(t, "Jane Doe", m.PersonByID("I1").FullName)
}

func TestManagerFailedOpenKeepsPreviousGraph(t *testing.T) {
	m := NewManager(testLogger())

	path := writeFixture(t)
	require.NoError(t, m.Open(path))

	bad := filepath.Join(t.TempDir(), "bad.ged")
	require.NoError(t, os.WriteFile(bad, []byte("0 HEAD\n9 DATE nonsense\n"), 0o644))
	require.Error(t, m.Open(bad))

	assert.True(t, m.IsOpen())
	assert.Equal(t, path, m.Filename())
	assert.Len(t, m.People(), 4)
}

func TestManagerSnapshot(t *testing.T) {
	m := NewManager(testLogger())

	_, err := m.Snapshot()
	assert.ErrorIs(t, err, ErrNoGraphOpen)

	require.NoError(t, m.Open(writeFixture(t)))
	g, err := m.Snapshot()
	require.NoError(t, err)
	assert.Len(t, g.People(), 4)

	m.Close()
	_, err = m.Snapshot()
	assert.ErrorIs(t, err, ErrNoGraphOpen)
}

func TestManagerGraphSnapshotSurvivesClose(t *testing.T) {
	m := NewManager(testLogger())
	require.NoError(t, m.Open(writeFixture(t)))

	g := m.Graph()
	m.Close()

	// The snapshot handle stays valid; only the manager forgets it.
	assert.Len(t, g.People(), 4)
}

func TestManagerConcurrentReads(t *testing.T) {
	m := NewManager(testLogger())
	require.NoError(t, m.Open(writeFixture(t)))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = m.PeopleSorted()
				if p := m.PersonByID("I1"); p != nil {
					_ = m.IsEventSourced(p, "1900")
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
