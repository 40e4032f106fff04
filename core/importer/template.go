package importer

// Entity names one record kind within a drop.
type Entity string

// The entities a drop can carry, in load order.
const (
	EntityStudents      Entity = "students"
	EntityContacts      Entity = "contacts"
	EntityEmails        Entity = "emails"
	EntityPhones        Entity = "phones"
	EntityAddresses     Entity = "addresses"
	EntityRelationships Entity = "relationships"
)

// allEntities fixes the order documents are loaded and reported in.
var allEntities = []Entity{
	EntityStudents,
	EntityContacts,
	EntityEmails,
	EntityPhones,
	EntityAddresses,
	EntityRelationships,
}

// FileSpec locates one entity's document inside a drop and maps its header
// spellings onto the canonical column names.
type FileSpec struct {
	// FileName is the document's name within the drop.
	FileName string

	// Aliases maps folded header keys to canonical column names. Headers
	// already matching a canonical name need no entry.
	Aliases map[string]string
}

// Template defines district-specific drop layouts: which documents exist and
// how their headers map to canonical columns. Entities a template does not
// name are simply absent from the import.
type Template struct {
	// Name identifies the template in config and logs.
	Name string

	// Files maps each entity to its document spec.
	Files map[Entity]FileSpec
}

// DefaultTemplate returns the standard export layout: one document per
// entity, headers already canonical.
func DefaultTemplate() Template {
	return Template{
		Name: "default",
		Files: map[Entity]FileSpec{
			EntityStudents:      {FileName: "students.csv"},
			EntityContacts:      {FileName: "contacts.csv"},
			EntityEmails:        {FileName: "emails.csv"},
			EntityPhones:        {FileName: "phones.csv"},
			EntityAddresses:     {FileName: "addresses.csv"},
			EntityRelationships: {FileName: "relationships.csv"},
		},
	}
}

// LegacyTemplate returns the layout of the older guardian-export tooling,
// which used different document names and header spellings.
func LegacyTemplate() Template {
	return Template{
		Name: "legacy",
		Files: map[Entity]FileSpec{
			EntityStudents: {
				FileName: "student_export.csv",
				Aliases: map[string]string{
					"birthdate": "dob",
					"home_room": "homeroom",
					"street":    "physical_street",
					"city":      "physical_city",
					"state":     "physical_state",
					"zip":       "physical_postal_code",
					"mail_zip":  "mailing_postal_code",
				},
			},
			EntityContacts: {
				FileName: "guardian_export.csv",
				Aliases: map[string]string{
					"guardian_id": "contact_identifier",
					"active":      "is_active",
				},
			},
			EntityEmails: {
				FileName: "guardian_email_export.csv",
				Aliases: map[string]string{
					"guardian_id": "contact_identifier",
					"email":       "address",
					"primary":     "is_primary",
				},
			},
			EntityPhones: {
				FileName: "guardian_phone_export.csv",
				Aliases: map[string]string{
					"guardian_id": "contact_identifier",
					"phone":       "number",
					"type":        "phone_type",
					"preferred":   "is_preferred",
					"sms":         "is_sms",
				},
			},
			EntityAddresses: {
				FileName: "guardian_address_export.csv",
				Aliases: map[string]string{
					"guardian_id": "contact_identifier",
					"type":        "address_type",
					"zip":         "postal_code",
				},
			},
			EntityRelationships: {
				FileName: "guardian_student_export.csv",
				Aliases: map[string]string{
					"guardian_id":  "contact_identifier",
					"relationship": "relationship_type",
					"note":         "relationship_note",
					"custody":      "has_custody",
					"emergency":    "is_emergency",
				},
			},
		},
	}
}

// GetTemplateByName returns the template for a configured layout name,
// falling back to the default layout.
func GetTemplateByName(name string) Template {
	switch name {
	case "legacy":
		return LegacyTemplate()
	default:
		return DefaultTemplate()
	}
}
