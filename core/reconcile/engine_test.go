package reconcile

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localRec / remoteRec are minimal stand-ins for a CSV-derived and an
// API-derived record of the same entity.
type localRec struct {
	Num  string
	Name string
}

type remoteRec struct {
	ID   int
	Name string
}

func testOptions() Options[localRec, remoteRec] {
	return Options[localRec, remoteRec]{
		Entity:    "test",
		LocalKey:  func(l localRec) string { return NumericKey(l.Num) },
		RemoteKey: func(r remoteRec) string { return strconv.Itoa(r.ID) },
		Diff: Differ([]Rule[localRec, remoteRec]{
			{
				Field:  "Name",
				Local:  func(l localRec) any { return l.Name },
				Remote: func(r remoteRec) any { return r.Name },
			},
		}),
	}
}

// TestCollate_Classification covers all four buckets in one pass and checks
// the old/new direction of a field change.
func TestCollate_Classification(t *testing.T) {
	local := []localRec{
		{Num: "1001", Name: "Ann"},
		{Num: "1002", Name: "Bob"},
		{Num: "1003", Name: "Carol"},
	}
	remote := []remoteRec{
		{ID: 1001, Name: "Anne"},
		{ID: 1002, Name: "Bob"},
		{ID: 1004, Name: "Dave"},
	}

	res := Collate(local, remote, testOptions())

	require.Len(t, res.Added, 1)
	assert.Equal(t, "1003", res.Added[0].Num)

	require.Len(t, res.Removed, 1)
	assert.Equal(t, 1004, res.Removed[0].ID)

	require.Len(t, res.Unchanged, 1)
	assert.Equal(t, "1002", res.Unchanged[0].Num)

	require.Len(t, res.Modified, 1)
	mod := res.Modified[0]
	assert.Equal(t, "1001", mod.Local.Num)
	assert.Equal(t, 1001, mod.Remote.ID)
	require.Len(t, mod.Changes, 1)
	assert.Equal(t, "Name", mod.Changes[0].Field)
	require.NotNil(t, mod.Changes[0].OldValue)
	require.NotNil(t, mod.Changes[0].NewValue)
	assert.Equal(t, "Anne", *mod.Changes[0].OldValue)
	assert.Equal(t, "Ann", *mod.Changes[0].NewValue)
}

// TestCollate_PartitionCompleteness checks that every keyed record lands in
// exactly one bucket.
func TestCollate_PartitionCompleteness(t *testing.T) {
	local := []localRec{
		{Num: "1", Name: "a"},
		{Num: "2", Name: "b"},
		{Num: "3", Name: "c"},
		{Num: "", Name: "unkeyed"},
	}
	remote := []remoteRec{
		{ID: 2, Name: "b"},
		{ID: 3, Name: "changed"},
		{ID: 4, Name: "d"},
		{ID: 5, Name: "e"},
	}

	res := Collate(local, remote, testOptions())

	keyedLocal := len(local) - res.SkippedLocal
	assert.Equal(t, keyedLocal, len(res.Added)+len(res.Modified)+len(res.Unchanged))

	matchedRemote := len(res.Modified) + len(res.Unchanged)
	keyedRemote := len(remote) - res.SkippedRemote
	assert.Equal(t, keyedRemote, len(res.Removed)+matchedRemote)

	assert.Equal(t, len(local), res.TotalLocal)
	assert.Equal(t, len(remote), res.TotalRemote)
}

// TestCollate_Idempotence checks that identical inputs produce identical
// results run over run.
func TestCollate_Idempotence(t *testing.T) {
	local := []localRec{
		{Num: "10", Name: "x"},
		{Num: "11", Name: "y"},
		{Num: "12", Name: "z"},
	}
	remote := []remoteRec{
		{ID: 11, Name: "y"},
		{ID: 12, Name: "zz"},
		{ID: 13, Name: "w"},
	}

	first := Collate(local, remote, testOptions())
	second := Collate(local, remote, testOptions())
	assert.Equal(t, first, second)
}

// TestCollate_UnkeyedSkipped checks that records without a computable key are
// excluded from every bucket and only show up in the skip counters.
func TestCollate_UnkeyedSkipped(t *testing.T) {
	local := []localRec{
		{Num: "", Name: "no key"},
		{Num: "not-a-number", Name: "bad key"},
		{Num: "7", Name: "ok"},
	}
	remote := []remoteRec{
		{ID: 7, Name: "ok"},
	}

	res := Collate(local, remote, testOptions())

	assert.Equal(t, 2, res.SkippedLocal)
	assert.Zero(t, res.SkippedRemote)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
	assert.Empty(t, res.Modified)
	assert.Len(t, res.Unchanged, 1)
}

// TestCollate_DuplicateKeyLaterWins checks collision handling on both sides.
func TestCollate_DuplicateKeyLaterWins(t *testing.T) {
	t.Run("remote duplicate", func(t *testing.T) {
		local := []localRec{{Num: "1", Name: "final"}}
		remote := []remoteRec{
			{ID: 1, Name: "earlier"},
			{ID: 1, Name: "final"},
		}

		res := Collate(local, remote, testOptions())

		assert.Equal(t, 1, res.CollisionsRemote)
		// The later remote record is the one compared against.
		assert.Len(t, res.Unchanged, 1)
		assert.Empty(t, res.Modified)
	})

	t.Run("local duplicate", func(t *testing.T) {
		local := []localRec{
			{Num: "1", Name: "earlier"},
			{Num: "1", Name: "later"},
		}
		remote := []remoteRec{{ID: 1, Name: "later"}}

		res := Collate(local, remote, testOptions())

		assert.Equal(t, 1, res.CollisionsLocal)
		// Both local records are still classified against the remote record.
		assert.Len(t, res.Modified, 1)
		assert.Len(t, res.Unchanged, 1)
	})
}

// TestCollate_DeterministicOrder checks that bucket order follows input
// order, not map iteration order.
func TestCollate_DeterministicOrder(t *testing.T) {
	var local []localRec
	var remote []remoteRec
	for i := 0; i < 50; i++ {
		local = append(local, localRec{Num: strconv.Itoa(i), Name: "local"})
		remote = append(remote, remoteRec{ID: i + 50, Name: "remote"})
	}

	res := Collate(local, remote, testOptions())

	require.Len(t, res.Added, 50)
	require.Len(t, res.Removed, 50)
	for i := 0; i < 50; i++ {
		assert.Equal(t, strconv.Itoa(i), res.Added[i].Num)
		assert.Equal(t, i+50, res.Removed[i].ID)
	}
}

// TestResult_Summarize checks that summary counts are pure functions of the
// four buckets.
func TestResult_Summarize(t *testing.T) {
	local := []localRec{
		{Num: "1", Name: "same"},
		{Num: "2", Name: "new name"},
		{Num: "3", Name: "brand new"},
	}
	remote := []remoteRec{
		{ID: 1, Name: "same"},
		{ID: 2, Name: "old name"},
		{ID: 9, Name: "gone"},
	}

	res := Collate(local, remote, testOptions())
	sum := res.Summarize("student_number")

	assert.Equal(t, len(res.Added), sum.New)
	assert.Equal(t, len(res.Modified), sum.Updated)
	assert.Equal(t, len(res.Unchanged), sum.Unchanged)
	assert.Equal(t, len(res.Removed), sum.Removed)
	assert.Equal(t, 3, sum.TotalLocal)
	assert.Equal(t, 3, sum.TotalRemote)
	assert.Equal(t, "student_number", sum.MatchField)
	assert.True(t, res.HasChanges())
}
