package students

import "roster-sync/core/sis"

// QueryName is the SIS query returning the full student collection.
const QueryName = "students"

// RemoteStudent is one student row as the SIS query returns it. Identifier
// and date fields use the tolerant wire types because the SIS is not
// consistent about encodings across releases.
type RemoteStudent struct {
	ID      int       `json:"id"`
	LocalID sis.Ident `json:"local_id"`
	FTEID   sis.Ident `json:"fteid"`

	SchoolID sis.Ident `json:"school_id"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`

	Gender string   `json:"gender"`
	DOB    sis.Date `json:"dob"`

	EnrollStatus sis.Ident `json:"enroll_status"`
	EntryDate    sis.Date  `json:"entry_date"`
	ExitDate     sis.Date  `json:"exit_date"`
	GradeLevel   sis.Ident `json:"grade_level"`

	Street     string `json:"street"`
	LineTwo    string `json:"line_two"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"zip"`

	MailingStreet     string `json:"mailing_street"`
	MailingLineTwo    string `json:"mailing_line_two"`
	MailingCity       string `json:"mailing_city"`
	MailingState      string `json:"mailing_state"`
	MailingPostalCode string `json:"mailing_zip"`

	Homeroom    string `json:"home_room"`
	Track       string `json:"track"`
	FamilyIdent string `json:"family_ident"`
}
