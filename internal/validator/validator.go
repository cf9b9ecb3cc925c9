package validator

// FieldError ties a validation message to the input field (or indexed path,
// e.g. "children[2].name") that produced it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validator struct {
	Errors      []string     `json:",omitempty"`
	FieldErrors []FieldError `json:",omitempty"`
}

func (v Validator) HasErrors() bool {
	return len(v.Errors) != 0 || len(v.FieldErrors) != 0
}

func (v *Validator) AddError(message string) {
	if v.Errors == nil {
		v.Errors = []string{}
	}

	v.Errors = append(v.Errors, message)
}

// AddFieldError records a field-level error, keeping only the first message
// reported for a given field so callers see one actionable problem per field.
func (v *Validator) AddFieldError(field, message string) {
	for _, fe := range v.FieldErrors {
		if fe.Field == field {
			return
		}
	}

	v.FieldErrors = append(v.FieldErrors, FieldError{Field: field, Message: message})
}

func (v *Validator) Check(ok bool, message string) {
	if !ok {
		v.AddError(message)
	}
}

func (v *Validator) CheckField(ok bool, field, message string) {
	if !ok {
		v.AddFieldError(field, message)
	}
}
