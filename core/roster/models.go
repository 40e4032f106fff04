package roster

import "time"

// AddressBlock groups the street-address fields that appear twice on a
// student record (physical and mailing).
type AddressBlock struct {
	Street     string `json:"street"`
	LineTwo    string `json:"line_two,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Student is one student row from the district export.
type Student struct {
	StudentNumber string `json:"student_number"`
	SchoolID      string `json:"school_id"`
	FTEID         string `json:"fteid,omitempty"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`

	Gender string     `json:"gender,omitempty"`
	DOB    *time.Time `json:"dob,omitempty"`

	EnrollStatus string     `json:"enroll_status,omitempty"`
	EntryDate    *time.Time `json:"entry_date,omitempty"`
	ExitDate     *time.Time `json:"exit_date,omitempty"`
	GradeLevel   string     `json:"grade_level,omitempty"`

	Physical AddressBlock `json:"physical_address"`
	Mailing  AddressBlock `json:"mailing_address"`

	Homeroom string `json:"homeroom,omitempty"`
	Track    string `json:"track,omitempty"`

	FamilyIdent string `json:"family_ident,omitempty"`
}

// Contact is a parent/guardian/emergency person. ContactIdentifier is the
// stable local key and is expected to equal the remote person's external id
// once the contact has been pushed upstream at least once. ContactID carries
// the remote-side id when the export happens to include it.
type Contact struct {
	ContactIdentifier string `json:"contact_identifier"`
	ContactID         string `json:"contact_id,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	IsActive bool `json:"is_active"`
}

// EmailAddress is one email record owned by a contact.
type EmailAddress struct {
	ContactIdentifier string `json:"contact_identifier"`
	Address           string `json:"address"`
	IsPrimary         bool   `json:"is_primary"`
}

// PhoneNumber is one phone record owned by a contact.
type PhoneNumber struct {
	ContactIdentifier string `json:"contact_identifier"`
	Number            string `json:"number"`
	PhoneType         string `json:"phone_type,omitempty"`
	Priority          int    `json:"priority"`
	IsPreferred       bool   `json:"is_preferred"`
	IsSMS             bool   `json:"is_sms"`
}

// Address is one mailing/physical address record owned by a contact.
type Address struct {
	ContactIdentifier string `json:"contact_identifier"`
	AddressType       string `json:"address_type,omitempty"`
	Street            string `json:"street"`
	LineTwo           string `json:"line_two,omitempty"`
	Unit              string `json:"unit,omitempty"`
	City              string `json:"city"`
	State             string `json:"state,omitempty"`
	PostalCode        string `json:"postal_code"`
	Priority          int    `json:"priority"`
}

// StudentContactRelationship ties a contact to a student. The pair
// (ContactIdentifier, StudentNumber) is the natural key; one relationship per
// contact-student pair is assumed.
type StudentContactRelationship struct {
	ContactIdentifier string `json:"contact_identifier"`
	StudentNumber     string `json:"student_number"`

	RelationshipType string `json:"relationship_type,omitempty"`
	RelationshipNote string `json:"relationship_note,omitempty"`
	Priority         int    `json:"priority"`

	IsLegalGuardian bool `json:"is_legal_guardian"`
	HasCustody      bool `json:"has_custody"`
	LivesWith       bool `json:"lives_with"`
	AllowPickup     bool `json:"allow_pickup"`
	IsEmergency     bool `json:"is_emergency"`
	ReceivesMail    bool `json:"receives_mail"`
}
