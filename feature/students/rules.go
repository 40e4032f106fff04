package students

import (
	"roster-sync/core/reconcile"
	"roster-sync/core/roster"
)

// Rules is the allow-list of compared student fields. Identifier fields
// (student number, FTEID, SIS id) are match keys, not compared fields, and
// never appear here.
func Rules() []reconcile.Rule[roster.Student, RemoteStudent] {
	return []reconcile.Rule[roster.Student, RemoteStudent]{
		{Field: "school_id",
			Local:  func(s roster.Student) any { return s.SchoolID },
			Remote: func(r RemoteStudent) any { return r.SchoolID.String() }},
		{Field: "first_name",
			Local:  func(s roster.Student) any { return s.FirstName },
			Remote: func(r RemoteStudent) any { return r.FirstName }},
		{Field: "middle_name",
			Local:  func(s roster.Student) any { return s.MiddleName },
			Remote: func(r RemoteStudent) any { return r.MiddleName }},
		{Field: "last_name",
			Local:  func(s roster.Student) any { return s.LastName },
			Remote: func(r RemoteStudent) any { return r.LastName }},
		{Field: "gender",
			Local:  func(s roster.Student) any { return s.Gender },
			Remote: func(r RemoteStudent) any { return r.Gender }},
		{Field: "dob",
			Local:  func(s roster.Student) any { return s.DOB },
			Remote: func(r RemoteStudent) any { return r.DOB.Time }},
		{Field: "enroll_status",
			Local:  func(s roster.Student) any { return s.EnrollStatus },
			Remote: func(r RemoteStudent) any { return r.EnrollStatus.String() }},
		{Field: "entry_date",
			Local:  func(s roster.Student) any { return s.EntryDate },
			Remote: func(r RemoteStudent) any { return r.EntryDate.Time }},
		{Field: "exit_date",
			Local:  func(s roster.Student) any { return s.ExitDate },
			Remote: func(r RemoteStudent) any { return r.ExitDate.Time }},
		{Field: "grade_level",
			Local:  func(s roster.Student) any { return s.GradeLevel },
			Remote: func(r RemoteStudent) any { return r.GradeLevel.String() }},
		{Field: "physical_street",
			Local:  func(s roster.Student) any { return s.Physical.Street },
			Remote: func(r RemoteStudent) any { return r.Street }},
		{Field: "physical_line_two",
			Local:  func(s roster.Student) any { return s.Physical.LineTwo },
			Remote: func(r RemoteStudent) any { return r.LineTwo }},
		{Field: "physical_city",
			Local:  func(s roster.Student) any { return s.Physical.City },
			Remote: func(r RemoteStudent) any { return r.City }},
		{Field: "physical_state",
			Local:  func(s roster.Student) any { return s.Physical.State },
			Remote: func(r RemoteStudent) any { return r.State }},
		{Field: "physical_postal_code",
			Local:  func(s roster.Student) any { return s.Physical.PostalCode },
			Remote: func(r RemoteStudent) any { return r.PostalCode }},
		{Field: "mailing_street",
			Local:  func(s roster.Student) any { return s.Mailing.Street },
			Remote: func(r RemoteStudent) any { return r.MailingStreet }},
		{Field: "mailing_line_two",
			Local:  func(s roster.Student) any { return s.Mailing.LineTwo },
			Remote: func(r RemoteStudent) any { return r.MailingLineTwo }},
		{Field: "mailing_city",
			Local:  func(s roster.Student) any { return s.Mailing.City },
			Remote: func(r RemoteStudent) any { return r.MailingCity }},
		{Field: "mailing_state",
			Local:  func(s roster.Student) any { return s.Mailing.State },
			Remote: func(r RemoteStudent) any { return r.MailingState }},
		{Field: "mailing_postal_code",
			Local:  func(s roster.Student) any { return s.Mailing.PostalCode },
			Remote: func(r RemoteStudent) any { return r.MailingPostalCode }},
		{Field: "homeroom",
			Local:  func(s roster.Student) any { return s.Homeroom },
			Remote: func(r RemoteStudent) any { return r.Homeroom }},
		{Field: "track",
			Local:  func(s roster.Student) any { return s.Track },
			Remote: func(r RemoteStudent) any { return r.Track }},
		{Field: "family_ident",
			Local:  func(s roster.Student) any { return s.FamilyIdent },
			Remote: func(r RemoteStudent) any { return r.FamilyIdent }},
	}
}
