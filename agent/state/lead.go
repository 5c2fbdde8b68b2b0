package state

// Field identifies one of the required lead slots.
type Field string

const (
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldPhone         Field = "phone"
	FieldInsuranceType Field = "insurance_type"
)

// Lead is the contact/intent record assembled across a conversation.
// Every field transitions empty -> set at most once; later candidates for an
// already-set field are dropped (first-write-wins).
type Lead struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	InsuranceType string `json:"insurance_type"`
}

// Set applies a candidate value under first-write-wins semantics.
// It reports whether the field was actually written.
func (l *Lead) Set(field Field, value string) bool {
	if l == nil || value == "" {
		return false
	}
	switch field {
	case FieldName:
		if l.Name != "" {
			return false
		}
		l.Name = value
	case FieldEmail:
		if l.Email != "" {
			return false
		}
		l.Email = value
	case FieldPhone:
		if l.Phone != "" {
			return false
		}
		l.Phone = value
	case FieldInsuranceType:
		if l.InsuranceType != "" {
			return false
		}
		l.InsuranceType = value
	default:
		return false
	}
	return true
}

// Get returns the current value of a field.
func (l *Lead) Get(field Field) string {
	if l == nil {
		return ""
	}
	switch field {
	case FieldName:
		return l.Name
	case FieldEmail:
		return l.Email
	case FieldPhone:
		return l.Phone
	case FieldInsuranceType:
		return l.InsuranceType
	default:
		return ""
	}
}

// Has reports whether a field is set.
func (l *Lead) Has(field Field) bool {
	return l.Get(field) != ""
}

// IsComplete reports whether all four required fields are set.
func (l *Lead) IsComplete() bool {
	if l == nil {
		return false
	}
	return l.Name != "" && l.Email != "" && l.Phone != "" && l.InsuranceType != ""
}
