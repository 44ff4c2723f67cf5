package firebird

// Attribute is one named, typed value sent to the save-user-details endpoint.
type Attribute struct {
	Name     string   `json:"paramName"`
	Value    any      `json:"paramValue"`
	DataType DataType `json:"paramDatatype"`
}

// Well-known attribute names.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldMobileNumber   = "mobileNumber"
	FieldGender         = "gender"
	FieldBirthDate      = "birthDate"
	FieldAddress        = "address"
	FieldWhatsappNumber = "whatsappNumber"
	FieldLocation       = "location"
	FieldCity           = "city"
	FieldState          = "state"
	FieldDistrict       = "district"
)
