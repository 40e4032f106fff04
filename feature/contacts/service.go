package contacts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"roster-sync/core/normalize"
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
	"roster-sync/core/sis"
)

// RemoteBundle holds the five remote collections one contact reconciliation
// pass consumes.
type RemoteBundle struct {
	Persons       []RemotePerson
	Emails        []RemoteEmail
	Phones        []RemotePhone
	Addresses     []RemoteAddress
	Relationships []RemoteRelationship
}

// Service handles contact reconciliation.
type Service struct {
	client *sis.Client
	logger *zap.Logger
}

// NewService creates a new contact service.
func NewService(client *sis.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Count returns the number of contacts the SIS query matches.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.client.QueryCount(ctx, QueryContacts, nil)
}

// FetchRemote downloads the five remote collections. Any incomplete fetch
// fails the whole bundle; reconciling against a truncated collection would
// report every missing record as removed.
func (s *Service) FetchRemote(ctx context.Context) (*RemoteBundle, error) {
	bundle := &RemoteBundle{}
	var err error
	if bundle.Persons, err = fetchRows[RemotePerson](ctx, s.client, QueryContacts); err != nil {
		return nil, err
	}
	if bundle.Emails, err = fetchRows[RemoteEmail](ctx, s.client, QueryEmails); err != nil {
		return nil, err
	}
	if bundle.Phones, err = fetchRows[RemotePhone](ctx, s.client, QueryPhones); err != nil {
		return nil, err
	}
	if bundle.Addresses, err = fetchRows[RemoteAddress](ctx, s.client, QueryAddresses); err != nil {
		return nil, err
	}
	if bundle.Relationships, err = fetchRows[RemoteRelationship](ctx, s.client, QueryRelationships); err != nil {
		return nil, err
	}
	return bundle, nil
}

func fetchRows[T any](ctx context.Context, client *sis.Client, query string) ([]T, error) {
	rows, err := client.QueryAll(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	out, err := sis.DecodeRows[T](rows)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", query, err)
	}
	return out, nil
}

// Reconcile fetches the remote bundle and collates it against the local
// export.
func (s *Service) Reconcile(ctx context.Context, local *roster.DataSet) (*Report, error) {
	remote, err := s.FetchRemote(ctx)
	if err != nil {
		return nil, err
	}
	return s.Collate(local, remote), nil
}

// Collate classifies the contacts and, for every matched pair, reconciles
// the four owned collections scoped to that contact. A matched contact lands
// in Unchanged only when its own fields and all four collections carry no
// changes.
func (s *Service) Collate(local *roster.DataSet, remote *RemoteBundle) *Report {
	core := reconcile.Collate(local.Contacts, remote.Persons, s.personOptions())

	sub := subIndex{
		localEmails:         local.EmailsByContact(),
		localPhones:         local.PhonesByContact(),
		localAddresses:      local.AddressesByContact(),
		localRelationships:  local.RelationshipsByContact(),
		remoteEmails:        groupRemote(remote.Emails, func(e RemoteEmail) sis.Ident { return e.ExternalID }),
		remotePhones:        groupRemote(remote.Phones, func(p RemotePhone) sis.Ident { return p.ExternalID }),
		remoteAddresses:     groupRemote(remote.Addresses, func(a RemoteAddress) sis.Ident { return a.ExternalID }),
		remoteRelationships: groupRemote(remote.Relationships, func(r RemoteRelationship) sis.Ident { return r.ExternalID }),
	}

	// Engine-unchanged contacts still need their remote person for the
	// detail record when an owned collection turns out to have changed.
	personIndex := make(map[string]RemotePerson, len(remote.Persons))
	for _, p := range remote.Persons {
		if k := normalize.Fold(p.ExternalID.String()); k != "" {
			personIndex[k] = p
		}
	}

	report := &Report{
		Added:            core.Added,
		Details:          []ContactDetail{},
		Removed:          core.Removed,
		Unchanged:        []roster.Contact{},
		TotalLocal:       core.TotalLocal,
		TotalRemote:      core.TotalRemote,
		SkippedLocal:     core.SkippedLocal,
		SkippedRemote:    core.SkippedRemote,
		CollisionsLocal:  core.CollisionsLocal,
		CollisionsRemote: core.CollisionsRemote,
	}

	for _, pair := range core.Modified {
		report.Details = append(report.Details, s.detail(pair.Local, pair.Remote, pair.Changes, sub))
	}
	for _, l := range core.Unchanged {
		d := s.detail(l, personIndex[normalize.Fold(l.ContactIdentifier)], nil, sub)
		if d.HasChanges() {
			report.Details = append(report.Details, d)
		} else {
			report.Unchanged = append(report.Unchanged, l)
		}
	}
	return report
}

// subIndex holds every owned collection grouped by the folded contact
// identifier, so each matched pair's sub-reconciliations are map lookups.
type subIndex struct {
	localEmails        map[string][]roster.EmailAddress
	localPhones        map[string][]roster.PhoneNumber
	localAddresses     map[string][]roster.Address
	localRelationships map[string][]roster.StudentContactRelationship

	remoteEmails        map[string][]RemoteEmail
	remotePhones        map[string][]RemotePhone
	remoteAddresses     map[string][]RemoteAddress
	remoteRelationships map[string][]RemoteRelationship
}

func groupRemote[T any](rows []T, owner func(T) sis.Ident) map[string][]T {
	out := make(map[string][]T)
	for _, row := range rows {
		k := normalize.Fold(owner(row).String())
		out[k] = append(out[k], row)
	}
	return out
}

func (s *Service) detail(l roster.Contact, r RemotePerson, changes []reconcile.FieldChange, sub subIndex) ContactDetail {
	k := normalize.Fold(l.ContactIdentifier)
	return ContactDetail{
		Local:         l,
		Remote:        r,
		Changes:       changes,
		Emails:        reconcile.Collate(sub.localEmails[k], sub.remoteEmails[k], s.emailOptions()),
		Phones:        reconcile.Collate(sub.localPhones[k], sub.remotePhones[k], s.phoneOptions()),
		Addresses:     reconcile.Collate(sub.localAddresses[k], sub.remoteAddresses[k], s.addressOptions()),
		Relationships: reconcile.Collate(sub.localRelationships[k], sub.remoteRelationships[k], s.relationshipOptions()),
	}
}

func (s *Service) personOptions() reconcile.Options[roster.Contact, RemotePerson] {
	return reconcile.Options[roster.Contact, RemotePerson]{
		Entity:    "contact",
		LocalKey:  func(c roster.Contact) string { return normalize.Fold(c.ContactIdentifier) },
		RemoteKey: func(r RemotePerson) string { return normalize.Fold(r.ExternalID.String()) },
		Diff:      reconcile.Differ(ContactRules()),
		Logger:    s.logger,
	}
}

func (s *Service) emailOptions() reconcile.Options[roster.EmailAddress, RemoteEmail] {
	return reconcile.Options[roster.EmailAddress, RemoteEmail]{
		Entity:    "email",
		LocalKey:  func(e roster.EmailAddress) string { return reconcile.EmailKey(e.Address) },
		RemoteKey: func(r RemoteEmail) string { return reconcile.EmailKey(r.Address) },
		Diff:      reconcile.Differ(EmailRules()),
		Logger:    s.logger,
	}
}

func (s *Service) phoneOptions() reconcile.Options[roster.PhoneNumber, RemotePhone] {
	return reconcile.Options[roster.PhoneNumber, RemotePhone]{
		Entity:    "phone",
		LocalKey:  func(p roster.PhoneNumber) string { return reconcile.PhoneKey(p.Number) },
		RemoteKey: func(r RemotePhone) string { return reconcile.PhoneKey(r.Number) },
		Diff:      reconcile.Differ(PhoneRules()),
		Logger:    s.logger,
	}
}

func (s *Service) addressOptions() reconcile.Options[roster.Address, RemoteAddress] {
	return reconcile.Options[roster.Address, RemoteAddress]{
		Entity:    "address",
		LocalKey:  func(a roster.Address) string { return reconcile.AddressKey(a.Street, a.City, a.PostalCode) },
		RemoteKey: func(r RemoteAddress) string { return reconcile.AddressKey(r.Street, r.City, r.PostalCode) },
		Diff:      reconcile.Differ(AddressRules()),
		Logger:    s.logger,
	}
}

func (s *Service) relationshipOptions() reconcile.Options[roster.StudentContactRelationship, RemoteRelationship] {
	return reconcile.Options[roster.StudentContactRelationship, RemoteRelationship]{
		Entity:    "relationship",
		LocalKey:  func(l roster.StudentContactRelationship) string { return reconcile.NumericKey(l.StudentNumber) },
		RemoteKey: func(r RemoteRelationship) string { return reconcile.NumericKey(r.StudentNumber.String()) },
		Diff:      reconcile.Differ(RelationshipRules()),
		Logger:    s.logger,
	}
}
