package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type localFixture struct {
	Name     string
	Grade    string
	Entry    *time.Time
	IsActive bool
}

type remoteFixture struct {
	Name     string
	Grade    int
	Entry    time.Time
	IsActive bool
}

// TestDiff_AllowList checks that only ruled fields are compared and that
// changes come back in rule-table order.
func TestDiff_AllowList(t *testing.T) {
	entry := time.Date(2016, time.August, 1, 9, 30, 0, 0, time.UTC)

	rules := []Rule[localFixture, remoteFixture]{
		{Field: "Name", Local: func(l localFixture) any { return l.Name }, Remote: func(r remoteFixture) any { return r.Name }},
		{Field: "GradeLevel", Local: func(l localFixture) any { return l.Grade }, Remote: func(r remoteFixture) any { return r.Grade }},
		{Field: "EntryDate", Local: func(l localFixture) any { return l.Entry }, Remote: func(r remoteFixture) any { return r.Entry }},
	}

	local := localFixture{Name: "Ann ", Grade: "5", Entry: &entry, IsActive: true}
	remote := remoteFixture{Name: "Anne", Grade: 5, Entry: entry, IsActive: false}

	changes := Diff(local, remote, rules)

	// IsActive differs but has no rule; Grade and Entry normalize equal.
	require.Len(t, changes, 1)
	assert.Equal(t, "Name", changes[0].Field)
	assert.Equal(t, "Anne", *changes[0].OldValue)
	assert.Equal(t, "Ann", *changes[0].NewValue)
}

// TestDiff_NoiseSuppression checks that formatting noise does not produce
// changes: numeric strings vs numbers, timestamps vs dates, padded strings.
func TestDiff_NoiseSuppression(t *testing.T) {
	morning := time.Date(2020, time.January, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2020, time.January, 15, 22, 45, 0, 0, time.UTC)

	rules := []Rule[localFixture, remoteFixture]{
		{Field: "Grade", Local: func(l localFixture) any { return l.Grade }, Remote: func(r remoteFixture) any { return r.Grade }},
		{Field: "Entry", Local: func(l localFixture) any { return l.Entry }, Remote: func(r remoteFixture) any { return r.Entry }},
		{Field: "Name", Local: func(l localFixture) any { return l.Name }, Remote: func(r remoteFixture) any { return r.Name }},
	}

	local := localFixture{Name: "  Bo  ", Grade: "12", Entry: &morning}
	remote := remoteFixture{Name: "Bo", Grade: 12, Entry: evening}

	assert.Empty(t, Diff(local, remote, rules))
}

// TestDiff_AbsentValues checks null handling: absent-vs-absent is equal,
// absent-vs-present is a change with a nil side.
func TestDiff_AbsentValues(t *testing.T) {
	rules := []Rule[localFixture, remoteFixture]{
		{Field: "Entry", Local: func(l localFixture) any { return l.Entry }, Remote: func(r remoteFixture) any { return r.Entry }},
	}

	t.Run("both absent", func(t *testing.T) {
		changes := Diff(localFixture{}, remoteFixture{}, rules)
		assert.Empty(t, changes)
	})

	t.Run("local only", func(t *testing.T) {
		entry := time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC)
		changes := Diff(localFixture{Entry: &entry}, remoteFixture{}, rules)
		require.Len(t, changes, 1)
		assert.Nil(t, changes[0].OldValue)
		require.NotNil(t, changes[0].NewValue)
		assert.Equal(t, "2021-09-01", *changes[0].NewValue)
	})
}

// TestDiff_BooleanEncodings checks that a local bool compares equal to a
// remote boolean regardless of how the wire encoded it, once the decode step
// has produced a bool.
func TestDiff_BooleanEncodings(t *testing.T) {
	rules := []Rule[localFixture, remoteFixture]{
		{Field: "IsActive", Local: func(l localFixture) any { return l.IsActive }, Remote: func(r remoteFixture) any { return r.IsActive }},
	}

	same := Diff(localFixture{IsActive: true}, remoteFixture{IsActive: true}, rules)
	assert.Empty(t, same)

	flipped := Diff(localFixture{IsActive: true}, remoteFixture{IsActive: false}, rules)
	require.Len(t, flipped, 1)
	assert.Equal(t, "false", *flipped[0].OldValue)
	assert.Equal(t, "true", *flipped[0].NewValue)
}
