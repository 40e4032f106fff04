package reconcile

import (
	"go.uber.org/zap"
)

// Options parameterizes one Collate run. LocalKey and RemoteKey must derive
// the same key for records describing the same real-world entity; an empty
// key marks the record as unmatchable. Diff receives a matched pair and
// returns the field-level changes (empty means unchanged).
type Options[L, R any] struct {
	// Entity names the entity type in diagnostics, e.g. "student", "email".
	Entity string

	// LocalKey derives the match key from a local record.
	LocalKey func(L) string

	// RemoteKey derives the match key from a remote record.
	RemoteKey func(R) string

	// Diff compares a matched pair and returns its field changes.
	Diff func(L, R) []FieldChange

	// Logger receives skip and collision diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Collate classifies two keyed collections into Added, Modified, Removed and
// Unchanged. The same function serves every entity type; only the options
// vary.
//
// Remote and local records are indexed by key first (later record wins on a
// collision), then the local collection is walked in input order and each
// record classified, then the remote collection is walked in input order to
// find records absent locally. Records whose key comes back empty are
// excluded from every bucket and reported through the skip counters.
func Collate[L, R any](local []L, remote []R, opts Options[L, R]) Result[L, R] {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("entity", opts.Entity))

	res := Result[L, R]{
		Added:       []L{},
		Modified:    []ModifiedPair[L, R]{},
		Removed:     []R{},
		Unchanged:   []L{},
		TotalLocal:  len(local),
		TotalRemote: len(remote),
	}

	remoteIndex := make(map[string]R, len(remote))
	for _, rec := range remote {
		key := opts.RemoteKey(rec)
		if key == "" {
			res.SkippedRemote++
			log.Debug("remote record has no computable match key, skipping")
			continue
		}
		if _, dup := remoteIndex[key]; dup {
			res.CollisionsRemote++
			log.Warn("duplicate remote match key, later record wins", zap.String("key", key))
		}
		remoteIndex[key] = rec
	}

	localIndex := make(map[string]L, len(local))
	for _, rec := range local {
		key := opts.LocalKey(rec)
		if key == "" {
			continue
		}
		if _, dup := localIndex[key]; dup {
			res.CollisionsLocal++
			log.Warn("duplicate local match key, later record wins", zap.String("key", key))
		}
		localIndex[key] = rec
	}

	for _, rec := range local {
		key := opts.LocalKey(rec)
		if key == "" {
			res.SkippedLocal++
			log.Debug("local record has no computable match key, skipping")
			continue
		}
		remoteRec, found := remoteIndex[key]
		if !found {
			res.Added = append(res.Added, rec)
			continue
		}
		changes := opts.Diff(rec, remoteRec)
		if len(changes) == 0 {
			res.Unchanged = append(res.Unchanged, rec)
			continue
		}
		res.Modified = append(res.Modified, ModifiedPair[L, R]{
			Local:   rec,
			Remote:  remoteRec,
			Changes: changes,
		})
	}

	for _, rec := range remote {
		key := opts.RemoteKey(rec)
		if key == "" {
			continue
		}
		if _, found := localIndex[key]; !found {
			res.Removed = append(res.Removed, rec)
		}
	}

	return res
}
