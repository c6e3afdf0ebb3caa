package profile

import (
	"fmt"
	"strings"
)

// Gender is the enumerated gender value selected on the form.
// The zero value is GenderUnset, which is not accepted on submit.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable values in display order, starting with unset.
var Genders = []Gender{GenderUnset, GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is a selectable, non-unset gender.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Label returns the picker label for g
func (g Gender) Label() string {
	switch g {
	case GenderUnset:
		return "Select Gender"
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return string(g)
	}
}

// Field identifies an editable field of UserProfile.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldAddress
	FieldPhone
	FieldGender
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldAddress, FieldPhone, FieldGender}

// String returns the flag-style name of the field (e.g. "first-name").
func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "first-name"
	case FieldLastName:
		return "last-name"
	case FieldAddress:
		return "address"
	case FieldPhone:
		return "phone"
	case FieldGender:
		return "gender"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Label returns the form label for the field.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldAddress:
		return "Address"
	case FieldPhone:
		return "Phone Number"
	case FieldGender:
		return "Gender"
	default:
		return f.String()
	}
}

// ParseField maps a flag-style field name back to a Field.
// Matching ignores case, and underscores are accepted in place of dashes.
func ParseField(name string) (Field, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, f := range Fields {
		if f.String() == normalized {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown profile field %q", name)
}

// UserProfile is the user-entered contact record plus its derived order id.
type UserProfile struct {
	FirstName string `json:"firstName" yaml:"first_name"`
	LastName  string `json:"lastName" yaml:"last_name"`
	Address   string `json:"address" yaml:"address"`
	Phone     string `json:"phone" yaml:"phone"`
	Gender    Gender `json:"gender" yaml:"gender"`

	// OrderID is empty until a successful submit.
	OrderID string `json:"orderId,omitempty" yaml:"order_id,omitempty"`
}

// HasOrder reports whether an order id has been assigned.
func (p UserProfile) HasOrder() bool {
	return p.OrderID != ""
}

// Value returns the current value of field f.
func (p UserProfile) Value(f Field) string {
	switch f {
	case FieldFirstName:
		return p.FirstName
	case FieldLastName:
		return p.LastName
	case FieldAddress:
		return p.Address
	case FieldPhone:
		return p.Phone
	case FieldGender:
		return string(p.Gender)
	default:
		return ""
	}
}

// FullName joins first and last name with a single space.
func (p UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Missing returns the required fields that would fail a submit, in form order.
func (p UserProfile) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if f == FieldGender {
			if !p.Gender.Valid() {
				missing = append(missing, f)
			}
			continue
		}
		if p.Value(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every required field is filled in.
func (p UserProfile) Complete() bool {
	return len(p.Missing()) == 0
}

// Update returns a copy of p with field f set to value.
// No validation happens here; an unknown field leaves p unchanged.
func Update(p UserProfile, f Field, value string) UserProfile {
	switch f {
	case FieldFirstName:
		p.FirstName = value
	case FieldLastName:
		p.LastName = value
	case FieldAddress:
		p.Address = value
	case FieldPhone:
		p.Phone = value
	case FieldGender:
		p.Gender = Gender(value)
	}
	return p
}
