package contacts

import "roster-sync/core/sis"

// SIS query names for the contact domain. The four owned collections are
// fetched as flat row sets and grouped by the person's external id.
const (
	QueryContacts      = "contacts"
	QueryEmails        = "contact_emails"
	QueryPhones        = "contact_phones"
	QueryAddresses     = "contact_addresses"
	QueryRelationships = "contact_relationships"
)

// RemotePerson is one contact row as the SIS query returns it. ExternalID is
// the district-assigned identifier the SIS stored when the contact was first
// pushed; it pairs with the local ContactIdentifier.
type RemotePerson struct {
	ID         int       `json:"id"`
	ExternalID sis.Ident `json:"external_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	IsActive sis.Flag `json:"is_active"`
}

// RemoteEmail is one email row. ExternalID names the owning person.
type RemoteEmail struct {
	ExternalID sis.Ident `json:"external_id"`

	Address   string   `json:"address"`
	IsPrimary sis.Flag `json:"is_primary"`
}

// RemotePhone is one phone row. ExternalID names the owning person.
type RemotePhone struct {
	ExternalID sis.Ident `json:"external_id"`

	Number      string    `json:"number"`
	PhoneType   string    `json:"phone_type"`
	Priority    sis.Ident `json:"priority"`
	IsPreferred sis.Flag  `json:"is_preferred"`
	IsSMS       sis.Flag  `json:"is_sms"`
}

// RemoteAddress is one address row. ExternalID names the owning person.
type RemoteAddress struct {
	ExternalID sis.Ident `json:"external_id"`

	AddressType string    `json:"address_type"`
	Street      string    `json:"street"`
	LineTwo     string    `json:"line_two"`
	Unit        string    `json:"unit"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"zip"`
	Priority    sis.Ident `json:"priority"`
}

// RemoteRelationship is one student-contact relationship row. ExternalID
// names the owning person, StudentNumber the related student.
type RemoteRelationship struct {
	ExternalID    sis.Ident `json:"external_id"`
	StudentNumber sis.Ident `json:"student_number"`

	RelationshipType string    `json:"relationship_type"`
	RelationshipNote string    `json:"relationship_note"`
	Priority         sis.Ident `json:"priority"`

	IsLegalGuardian sis.Flag `json:"is_legal_guardian"`
	HasCustody      sis.Flag `json:"has_custody"`
	LivesWith       sis.Flag `json:"lives_with"`
	AllowPickup     sis.Flag `json:"allow_pickup"`
	IsEmergency     sis.Flag `json:"is_emergency"`
	ReceivesMail    sis.Flag `json:"receives_mail"`
}
