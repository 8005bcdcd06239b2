package contacts

// Field is the stable key of one address book field
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldCompany     Field = "company"
	FieldMobilePhone Field = "mobilePhone"
	FieldWorkPhone   Field = "workPhone"
	FieldHomePhone   Field = "homePhone"
	FieldWorkEmail   Field = "workEmail"
	FieldHomeEmail   Field = "homeEmail"
	FieldStreet      Field = "street"
	FieldCity        Field = "city"
	FieldZip         Field = "zip"
	FieldState       Field = "state"
	FieldCountry     Field = "country"
)

// FieldSpec describes one schema entry
type FieldSpec struct {
	Field Field
	Label string
}

// Schema is the ordered field list shared by every record
var Schema = []FieldSpec{
	{FieldFirstName, "First Name"},
	{FieldLastName, "Last Name"},
	{FieldCompany, "Company"},
	{FieldMobilePhone, "Mobile Phone"},
	{FieldWorkPhone, "Work Phone"},
	{FieldHomePhone, "Home Phone"},
	{FieldWorkEmail, "Work Email"},
	{FieldHomeEmail, "Home Email"},
	{FieldStreet, "Street"},
	{FieldCity, "City"},
	{FieldZip, "Zip"},
	{FieldState, "State"},
	{FieldCountry, "Country"},
}

// ListFields are the columns shown in contact lists
var ListFields = []Field{FieldFirstName, FieldLastName, FieldCompany}

var schemaIndex = func() map[Field]int {
	idx := make(map[Field]int, len(Schema))
	for i, spec := range Schema {
		idx[spec.Field] = i
	}
	return idx
}()

// Fields returns the schema field keys in order
func Fields() []Field {
	fields := make([]Field, len(Schema))
	for i, spec := range Schema {
		fields[i] = spec.Field
	}
	return fields
}

// Valid reports whether f belongs to the schema
func (f Field) Valid() bool {
	_, ok := schemaIndex[f]
	return ok
}

// Label returns the display label, or the raw key for unknown fields
func (f Field) Label() string {
	if i, ok := schemaIndex[f]; ok {
		return Schema[i].Label
	}
	return string(f)
}

// ParseField resolves a field key
func ParseField(key string) (Field, bool) {
	f := Field(key)
	return f, f.Valid()
}
