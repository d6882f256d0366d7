package licenses

// Entry describes one third-party component and its license.
type Entry struct {
	Name              string
	Author            string
	Version           string
	Website           string
	Description       string
	License           string // license identifier, e.g. "BSD-3-Clause"
	LicenseFile       string // bundled license text
	CustomLicenseFile string // URL of a license text that is not bundled
	LicenseWebsite    string
}

// Field identifies an Entry column. Values start above UserRole so they can
// sit next to toolkit defined roles.
type Field int

// UserRole is the first value available for custom roles.
const UserRole Field = 0x0100

const (
	FieldName Field = UserRole + 1 + iota
	FieldAuthor
	FieldVersion
	FieldDescription
	FieldWebsite
	FieldLicense
	FieldLicenseFile
	FieldCustomLicenseFile
	FieldLicenseWebsite
)

// Fields lists all fields in role order.
var Fields = []Field{
	FieldName,
	FieldAuthor,
	FieldVersion,
	FieldDescription,
	FieldWebsite,
	FieldLicense,
	FieldLicenseFile,
	FieldCustomLicenseFile,
	FieldLicenseWebsite,
}

var fieldNames = map[Field]string{
	FieldName:              "name",
	FieldAuthor:            "author",
	FieldVersion:           "version",
	FieldDescription:       "description",
	FieldWebsite:           "website",
	FieldLicense:           "license",
	FieldLicenseFile:       "licenseFile",
	FieldCustomLicenseFile: "customLicenseFile",
	FieldLicenseWebsite:    "licenseWebsite",
}

// String returns the role name of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether f is one of the defined fields.
func (f Field) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}

// FieldNames returns the role -> name mapping.
func FieldNames() map[Field]string {
	names := make(map[Field]string, len(fieldNames))
	for field, name := range fieldNames {
		names[field] = name
	}
	return names
}

// FieldByName looks up a field by its role name.
func FieldByName(name string) (Field, bool) {
	for field, fieldName := range fieldNames {
		if fieldName == name {
			return field, true
		}
	}
	return 0, false
}

// Value returns the content of field f.
func (e Entry) Value(f Field) (string, bool) {
	switch f {
	case FieldName:
		return e.Name, true
	case FieldAuthor:
		return e.Author, true
	case FieldVersion:
		return e.Version, true
	case FieldDescription:
		return e.Description, true
	case FieldWebsite:
		return e.Website, true
	case FieldLicense:
		return e.License, true
	case FieldLicenseFile:
		return e.LicenseFile, true
	case FieldCustomLicenseFile:
		return e.CustomLicenseFile, true
	case FieldLicenseWebsite:
		return e.LicenseWebsite, true
	}
	return "", false
}
