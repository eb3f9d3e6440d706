package validation

// FieldRule validates one named field. Cross-field rules (confirm password,
// joining date vs date of birth) read their sibling values from the form map.
type FieldRule func(value string, form map[string]string) string

// Field binds a form field name to its rule. Forms enumerate their fields
// explicitly instead of dispatching on whatever keys happen to be present.
type Field struct {
	Name string
	Rule FieldRule
}

// Form is an ordered list of field rules for one submission shape.
type Form struct {
	Fields []Field
}

// Rule adapts a single-value validator into a FieldRule.
func Rule(fn func(string) string) FieldRule {
	return func(value string, _ map[string]string) string {
		return fn(value)
	}
}

// Validate recomputes the full error map from the current values. Fields not
// enumerated in the form are ignored; enumerated fields always get an entry,
// empty when valid.
func (f Form) Validate(values map[string]string) map[string]string {
	errs := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		errs[field.Name] = field.Rule(values[field.Name], values)
	}
	return errs
}

// Valid reports whether every enumerated field is present, non-empty and
// passes its rule.
func (f Form) Valid(values map[string]string) bool {
	for _, field := range f.Fields {
		if ValidateRequired(values[field.Name]) != "" {
			return false
		}
		if field.Rule(values[field.Name], values) != "" {
			return false
		}
	}
	return true
}

// EmployeeForm covers the fields shared by employee create/update submissions.
var EmployeeForm = Form{
	Fields: []Field{
		{Name: "firstName", Rule: Rule(ValidateRequired)},
		{Name: "lastName", Rule: Rule(ValidateRequired)},
		{Name: "email", Rule: Rule(ValidateCompanyEmail)},
		{Name: "personalEmail", Rule: Rule(ValidatePersonalEmail)},
		{Name: "phone", Rule: Rule(ValidatePhone)},
		{Name: "dateOfBirth", Rule: Rule(ValidateDateOfBirth)},
		{Name: "joiningDate", Rule: func(value string, form map[string]string) string {
			return ValidateJoiningDate(value, form["dateOfBirth"])
		}},
	},
}

// PasswordResetForm covers the final step of the reset wizard.
var PasswordResetForm = Form{
	Fields: []Field{
		{Name: "password", Rule: Rule(ValidatePassword)},
		{Name: "confirmPassword", Rule: func(value string, form map[string]string) string {
			return ValidateConfirmPassword(form["password"], value)
		}},
	},
}
