// Package profile defines the registry of updatable profile fields: their
// validators, free-text aliases, and the canned user-facing strings.
package profile

import (
	"regexp"
	"strings"
)

// FieldSpec describes one updatable profile field. Immutable, defined at
// process start.
type FieldSpec struct {
	Key     string
	Label   string
	Example string
	Success string
	Failure string

	// Validate returns an error message for a rejected value, or "" when
	// the value is acceptable.
	Validate func(value string) string
}

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	dobPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func noConstraint(string) string { return "" }

// fields is the registry in declaration order. Example listings preserve
// this order.
var fields = []FieldSpec{
	{
		Key:      "full_name",
		Label:    "name",
		Example:  "Update my name to John Doe",
		Success:  "✅ Your name has been updated successfully.",
		Failure:  "❌ Failed to update your name.",
		Validate: noConstraint,
	},
	{
		Key:      "bio",
		Label:    "bio",
		Example:  "Update my bio to Django developer",
		Success:  "✅ Your bio has been updated successfully.",
		Failure:  "❌ Failed to update your bio.",
		Validate: noConstraint,
	},
	{
		Key:     "phone_number",
		Label:   "phone number",
		Example: "Change my phone number to 9876543210",
		Success: "✅ Your phone number has been updated successfully.",
		Failure: "❌ Failed to update your phone number.",
		Validate: func(value string) string {
			if !phonePattern.MatchString(value) {
				return "Phone number must be exactly 10 digits."
			}
			return ""
		},
	},
	{
		Key:     "gender",
		Label:   "gender",
		Example: "Set my gender to M",
		Success: "✅ Your gender has been updated successfully.",
		Failure: "❌ Failed to update your gender.",
		Validate: func(value string) string {
			switch strings.ToUpper(value) {
			case "M", "F", "O":
				return ""
			}
			return "Gender must be M, F, or O."
		},
	},
	{
		Key:     "date_of_birth",
		Label:   "date of birth",
		Example: "Update my dob to 2000-05-14",
		Success: "✅ Your date of birth has been updated successfully.",
		Failure: "❌ Failed to update your date of birth.",
		Validate: func(value string) string {
			// Digit-pattern check only; calendar validity is the auth
			// service's concern.
			if !dobPattern.MatchString(value) {
				return "Date of birth must be in YYYY-MM-DD format."
			}
			return ""
		},
	},
}

// Alias maps a free-text alias to a canonical field key. Lookup is
// substring containment against the lowercased message; the first alias in
// declaration order wins, so the order below is load-bearing ("phone" must
// be scanned before "phone number").
type Alias struct {
	Text string
	Key  string
}

var aliases = []Alias{
	{"name", "full_name"},
	{"full name", "full_name"},
	{"fullname", "full_name"},

	{"bio", "bio"},
	{"about", "bio"},
	{"about me", "bio"},

	{"phone", "phone_number"},
	{"phone number", "phone_number"},
	{"number", "phone_number"},

	{"gender", "gender"},

	{"dob", "date_of_birth"},
	{"date of birth", "date_of_birth"},
	{"birthdate", "date_of_birth"},
}

// Lookup returns the spec for a canonical field key.
func Lookup(key string) (FieldSpec, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Aliases returns the ordered alias table.
func Aliases() []Alias {
	return aliases
}

// Examples returns the full bulleted example listing, one line per field in
// declaration order.
func Examples() string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = "- " + f.Example
	}
	return strings.Join(lines, "\n")
}

// ExampleFor returns the bulleted example for a single field, falling back
// to the full listing for unknown keys.
func ExampleFor(key string) string {
	if f, ok := Lookup(key); ok {
		return "- " + f.Example
	}
	return Examples()
}

// Validate runs the field's validator against a raw value. Unknown fields
// validate clean; the caller is expected to have resolved the key first.
func Validate(key, value string) string {
	f, ok := Lookup(key)
	if !ok {
		return ""
	}
	return f.Validate(value)
}
