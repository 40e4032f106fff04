package contacts

import (
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
)

// The allow-lists of compared fields, one table per collection. Match-key
// fields (identifier, email address, phone digits, street/city/postal,
// student number) never appear in their own table: a matched pair is already
// key-equal, and a key difference means a different record, not a change.

// ContactRules compares the contact's own fields.
func ContactRules() []reconcile.Rule[roster.Contact, RemotePerson] {
	return []reconcile.Rule[roster.Contact, RemotePerson]{
		{Field: "first_name",
			Local:  func(c roster.Contact) any { return c.FirstName },
			Remote: func(r RemotePerson) any { return r.FirstName }},
		{Field: "last_name",
			Local:  func(c roster.Contact) any { return c.LastName },
			Remote: func(r RemotePerson) any { return r.LastName }},
		{Field: "is_active",
			Local:  func(c roster.Contact) any { return c.IsActive },
			Remote: func(r RemotePerson) any { return r.IsActive.Bool() }},
	}
}

// EmailRules compares email fields.
func EmailRules() []reconcile.Rule[roster.EmailAddress, RemoteEmail] {
	return []reconcile.Rule[roster.EmailAddress, RemoteEmail]{
		{Field: "is_primary",
			Local:  func(e roster.EmailAddress) any { return e.IsPrimary },
			Remote: func(r RemoteEmail) any { return r.IsPrimary.Bool() }},
	}
}

// PhoneRules compares phone fields.
func PhoneRules() []reconcile.Rule[roster.PhoneNumber, RemotePhone] {
	return []reconcile.Rule[roster.PhoneNumber, RemotePhone]{
		{Field: "phone_type",
			Local:  func(p roster.PhoneNumber) any { return p.PhoneType },
			Remote: func(r RemotePhone) any { return r.PhoneType }},
		{Field: "priority",
			Local:  func(p roster.PhoneNumber) any { return p.Priority },
			Remote: func(r RemotePhone) any { return r.Priority.String() }},
		{Field: "is_preferred",
			Local:  func(p roster.PhoneNumber) any { return p.IsPreferred },
			Remote: func(r RemotePhone) any { return r.IsPreferred.Bool() }},
		{Field: "is_sms",
			Local:  func(p roster.PhoneNumber) any { return p.IsSMS },
			Remote: func(r RemotePhone) any { return r.IsSMS.Bool() }},
	}
}

// AddressRules compares address fields.
func AddressRules() []reconcile.Rule[roster.Address, RemoteAddress] {
	return []reconcile.Rule[roster.Address, RemoteAddress]{
		{Field: "address_type",
			Local:  func(a roster.Address) any { return a.AddressType },
			Remote: func(r RemoteAddress) any { return r.AddressType }},
		{Field: "line_two",
			Local:  func(a roster.Address) any { return a.LineTwo },
			Remote: func(r RemoteAddress) any { return r.LineTwo }},
		{Field: "unit",
			Local:  func(a roster.Address) any { return a.Unit },
			Remote: func(r RemoteAddress) any { return r.Unit }},
		{Field: "state",
			Local:  func(a roster.Address) any { return a.State },
			Remote: func(r RemoteAddress) any { return r.State }},
		{Field: "priority",
			Local:  func(a roster.Address) any { return a.Priority },
			Remote: func(r RemoteAddress) any { return r.Priority.String() }},
	}
}

// RelationshipRules compares student-contact relationship fields.
func RelationshipRules() []reconcile.Rule[roster.StudentContactRelationship, RemoteRelationship] {
	return []reconcile.Rule[roster.StudentContactRelationship, RemoteRelationship]{
		{Field: "relationship_type",
			Local:  func(l roster.StudentContactRelationship) any { return l.RelationshipType },
			Remote: func(r RemoteRelationship) any { return r.RelationshipType }},
		{Field: "relationship_note",
			Local:  func(l roster.StudentContactRelationship) any { return l.RelationshipNote },
			Remote: func(r RemoteRelationship) any { return r.RelationshipNote }},
		{Field: "priority",
			Local:  func(l roster.StudentContactRelationship) any { return l.Priority },
			Remote: func(r RemoteRelationship) any { return r.Priority.String() }},
		{Field: "is_legal_guardian",
			Local:  func(l roster.StudentContactRelationship) any { return l.IsLegalGuardian },
			Remote: func(r RemoteRelationship) any { return r.IsLegalGuardian.Bool() }},
		{Field: "has_custody",
			Local:  func(l roster.StudentContactRelationship) any { return l.HasCustody },
			Remote: func(r RemoteRelationship) any { return r.HasCustody.Bool() }},
		{Field: "lives_with",
			Local:  func(l roster.StudentContactRelationship) any { return l.LivesWith },
			Remote: func(r RemoteRelationship) any { return r.LivesWith.Bool() }},
		{Field: "allow_pickup",
			Local:  func(l roster.StudentContactRelationship) any { return l.AllowPickup },
			Remote: func(r RemoteRelationship) any { return r.AllowPickup.Bool() }},
		{Field: "is_emergency",
			Local:  func(l roster.StudentContactRelationship) any { return l.IsEmergency },
			Remote: func(r RemoteRelationship) any { return r.IsEmergency.Bool() }},
		{Field: "receives_mail",
			Local:  func(l roster.StudentContactRelationship) any { return l.ReceivesMail },
			Remote: func(r RemoteRelationship) any { return r.ReceivesMail.Bool() }},
	}
}
