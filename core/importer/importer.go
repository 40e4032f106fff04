package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"roster-sync/core/roster"
	"roster-sync/core/utils"
)

// Issue is one non-fatal import diagnostic tied to a source location. Line
// numbers count from the top of the document, header included.
type Issue struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s:%d: %s", i.File, i.Line, i.Message)
}

// Source supplies the documents of one drop by file name. Implementations
// exist for local directories and for the storage drop zone.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource reads drop documents from a local directory.
type DirSource string

// Open opens the named document under the directory.
func (d DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(string(d), name))
}

// Importer parses one CSV drop into a roster data set using a drop template.
type Importer struct {
	template Template
	log      *zap.Logger

	// Strict turns import issues into a fatal error. The default accepts a
	// degraded drop and reports the issues alongside the data set.
	Strict bool
}

// New builds an importer for the given template.
func New(template Template, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{template: template, log: log}
}

// Load reads every document the template names and assembles the data set.
// A document the source cannot supply is fatal; malformed cells degrade to
// zero values and come back as issues, unless Strict is set.
func (imp *Importer) Load(ctx context.Context, src Source) (*roster.DataSet, []Issue, error) {
	ds := &roster.DataSet{}
	var issues []Issue

	for _, entity := range allEntities {
		spec, ok := imp.template.Files[entity]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		table, err := imp.readDocument(ctx, src, spec)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", spec.FileName, err)
		}

		var entityIssues []Issue
		switch entity {
		case EntityStudents:
			ds.Students, entityIssues = parseStudents(table, spec.FileName)
		case EntityContacts:
			ds.Contacts, entityIssues = parseContacts(table, spec.FileName)
		case EntityEmails:
			ds.Emails, entityIssues = parseEmails(table, spec.FileName)
		case EntityPhones:
			ds.Phones, entityIssues = parsePhones(table, spec.FileName)
		case EntityAddresses:
			ds.Addresses, entityIssues = parseAddresses(table, spec.FileName)
		case EntityRelationships:
			ds.Relationships, entityIssues = parseRelationships(table, spec.FileName)
		}
		issues = append(issues, entityIssues...)
	}

	if imp.Strict && len(issues) > 0 {
		return nil, issues, fmt.Errorf("strict import: %d issue(s), first: %s", len(issues), issues[0])
	}

	imp.log.Info("import complete",
		zap.String("template", imp.template.Name),
		zap.Any("counts", ds.Counts()),
		zap.Int("issues", len(issues)),
	)
	return ds, issues, nil
}

func (imp *Importer) readDocument(ctx context.Context, src Source, spec FileSpec) (*Table, error) {
	f, err := src.Open(ctx, spec.FileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f, spec.Aliases)
}

func parseStudents(t *Table, file string) ([]roster.Student, []Issue) {
	students := make([]roster.Student, 0, t.Len())
	var issues []Issue
	for i := 0; i < t.Len(); i++ {
		row, line := t.Row(i), i+2
		s := roster.Student{
			StudentNumber: row.Get("student_number"),
			SchoolID:      row.Get("school_id"),
			FTEID:         row.Get("fteid"),
			FirstName:     row.Get("first_name"),
			MiddleName:    row.Get("middle_name"),
			LastName:      row.Get("last_name"),
			Gender:        row.Get("gender"),
			EnrollStatus:  row.Get("enroll_status"),
			GradeLevel:    row.Get("grade_level"),
			Homeroom:      row.Get("homeroom"),
			Track:         row.Get("track"),
			FamilyIdent:   row.Get("family_ident"),
			Physical: roster.AddressBlock{
				Street:     row.Get("physical_street"),
				LineTwo:    row.Get("physical_line_two"),
				City:       row.Get("physical_city"),
				State:      row.Get("physical_state"),
				PostalCode: row.Get("physical_postal_code"),
			},
			Mailing: roster.AddressBlock{
				Street:     row.Get("mailing_street"),
				LineTwo:    row.Get("mailing_line_two"),
				City:       row.Get("mailing_city"),
				State:      row.Get("mailing_state"),
				PostalCode: row.Get("mailing_postal_code"),
			},
		}
		s.DOB = dateCell(row, "dob", file, line, &issues)
		s.EntryDate = dateCell(row, "entry_date", file, line, &issues)
		s.ExitDate = dateCell(row, "exit_date", file, line, &issues)
		students = append(students, s)
	}
	return students, issues
}

func parseContacts(t *Table, file string) ([]roster.Contact, []Issue) {
	contacts := make([]roster.Contact, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		contacts = append(contacts, roster.Contact{
			ContactIdentifier: row.Get("contact_identifier"),
			ContactID:         row.Get("contact_id"),
			FirstName:         row.Get("first_name"),
			LastName:          row.Get("last_name"),
			IsActive:          parseBool(row.Get("is_active")),
		})
	}
	return contacts, nil
}

func parseEmails(t *Table, file string) ([]roster.EmailAddress, []Issue) {
	emails := make([]roster.EmailAddress, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		emails = append(emails, roster.EmailAddress{
			ContactIdentifier: row.Get("contact_identifier"),
			Address:           row.Get("address"),
			IsPrimary:         parseBool(row.Get("is_primary")),
		})
	}
	return emails, nil
}

func parsePhones(t *Table, file string) ([]roster.PhoneNumber, []Issue) {
	phones := make([]roster.PhoneNumber, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		phones = append(phones, roster.PhoneNumber{
			ContactIdentifier: row.Get("contact_identifier"),
			Number:            row.Get("number"),
			PhoneType:         row.Get("phone_type"),
			Priority:          utils.ToInt(row.Get("priority")),
			IsPreferred:       parseBool(row.Get("is_preferred")),
			IsSMS:             parseBool(row.Get("is_sms")),
		})
	}
	return phones, nil
}

func parseAddresses(t *Table, file string) ([]roster.Address, []Issue) {
	addresses := make([]roster.Address, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		addresses = append(addresses, roster.Address{
			ContactIdentifier: row.Get("contact_identifier"),
			AddressType:       row.Get("address_type"),
			Street:            row.Get("street"),
			LineTwo:           row.Get("line_two"),
			Unit:              row.Get("unit"),
			City:              row.Get("city"),
			State:             row.Get("state"),
			PostalCode:        row.Get("postal_code"),
			Priority:          utils.ToInt(row.Get("priority")),
		})
	}
	return addresses, nil
}

func parseRelationships(t *Table, file string) ([]roster.StudentContactRelationship, []Issue) {
	rels := make([]roster.StudentContactRelationship, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		rels = append(rels, roster.StudentContactRelationship{
			ContactIdentifier: row.Get("contact_identifier"),
			StudentNumber:     row.Get("student_number"),
			RelationshipType:  row.Get("relationship_type"),
			RelationshipNote:  row.Get("relationship_note"),
			Priority:          utils.ToInt(row.Get("priority")),
			IsLegalGuardian:   parseBool(row.Get("is_legal_guardian")),
			HasCustody:        parseBool(row.Get("has_custody")),
			LivesWith:         parseBool(row.Get("lives_with")),
			AllowPickup:       parseBool(row.Get("allow_pickup")),
			IsEmergency:       parseBool(row.Get("is_emergency")),
			ReceivesMail:      parseBool(row.Get("receives_mail")),
		})
	}
	return rels, nil
}

// csvDateLayouts are the date forms district exports use.
var csvDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

func dateCell(row Row, col, file string, line int, issues *[]Issue) *time.Time {
	t, err := parseDate(row.Get(col))
	if err != nil {
		*issues = append(*issues, Issue{File: file, Line: line, Message: fmt.Sprintf("%s: %v", col, err)})
		return nil
	}
	return t
}

// parseBool reads the boolean spellings district exports use. Unrecognized
// values read as false.
func parseBool(s string) bool {
	return utils.ToBool(s)
}
