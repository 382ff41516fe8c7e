// Package contact implements the contact form: field validation, the
// submission state machine and the submitters that deliver a lead.
package contact

import "strings"

// Fields are the values typed into the contact form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// Lang is the locale the visitor was browsing in. Not validated.
	Lang string `json:"lang,omitempty"`
}

// Trim returns a copy with surrounding whitespace removed from every field.
func (f Fields) Trim() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
		Lang:    strings.TrimSpace(f.Lang),
	}
}

// Missing lists the required fields that are empty, in form order.
// Phone is optional.
func (f Fields) Missing() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}
