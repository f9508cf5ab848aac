package forms

import (
	"strings"
)

// NonFieldErrors collects errors that belong to the form as a whole.
const NonFieldErrors = "__all__"

// Form is the result of validating submitted data: the cleaned values and the
// errors per field. It is what the templates and the JSON context receive.
type Form struct {
	Data   map[string]string   `json:"data"`
	Errors map[string][]string `json:"errors"`
}

func New(data map[string]string) *Form {
	if data == nil {
		data = map[string]string{}
	}
	return &Form{
		Data:   data,
		Errors: map[string][]string{},
	}
}

// Empty is an unbound form for GET requests.
func Empty() *Form {
	return New(nil)
}

func (f *Form) AddError(field, message string) {
	f.Errors[field] = append(f.Errors[field], message)
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

func (f *Form) Get(field string) string {
	return f.Data[field]
}

// FieldErrors returns the messages of one field, used by the templates.
func (f *Form) FieldErrors(field string) []string {
	return f.Errors[field]
}

func (f *Form) HasError(field string) bool {
	return len(f.Errors[field]) > 0
}

// Values copies the named fields out of a form submission, trimming
// surrounding whitespace.
func Values(get func(key string, defaultValue ...string) string, fields ...string) map[string]string {
	data := make(map[string]string, len(fields))
	for _, field := range fields {
		data[field] = strings.TrimSpace(get(field))
	}
	return data
}
