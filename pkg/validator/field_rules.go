package validator

import (
	"net/url"
	"regexp"

	"github.com/sigforge/sigforge/pkg/sanitizer"
)

// Field length limits. Enforced at validation time only: the record may
// transiently hold longer values before the error is surfaced.
const (
	MinNameLen    = 2
	MaxNameLen    = 100
	MaxTitleLen   = 100
	MaxCompanyLen = 100
	MaxPhoneLen   = 30
	MaxTwitterLen = 50
	MaxURLLen     = 500
)

var (
	// Digits, spaces and the usual phone punctuation. Nothing else.
	phoneRegex = regexp.MustCompile(`^[+\d\s().-]*$`)

	// A handle is a run of word characters with an optional leading "@",
	// matched after internal whitespace is stripped.
	handleRegex = regexp.MustCompile(`^@?\w+$`)
)

// Name validates the required full-name field: non-blank, trimmed length at
// least MinNameLen, raw length at most MaxNameLen.
func Name(value string) error {
	return First(
		Rule{
			Check: func() bool { return sanitizer.Trim(value) != "" },
			Error: ValidationError{Field: "name", Message: "Name is required"},
		},
		Rule{
			Check: func() bool { return len(sanitizer.Trim(value)) >= MinNameLen },
			Error: ValidationError{Field: "name", Message: "Name is too short"},
		},
		Rule{
			Check: func() bool { return len(value) <= MaxNameLen },
			Error: ValidationError{Field: "name", Message: "Name is too long"},
		},
	)
}

// Title validates the required job-title field.
func Title(value string) error {
	return First(
		Rule{
			Check: func() bool { return sanitizer.Trim(value) != "" },
			Error: ValidationError{Field: "title", Message: "Job title is required"},
		},
		Rule{
			Check: func() bool { return len(value) <= MaxTitleLen },
			Error: ValidationError{Field: "title", Message: "Title is too long"},
		},
	)
}

// Company validates the optional company field.
func Company(value string) error {
	return First(
		Rule{
			Check: func() bool { return len(value) <= MaxCompanyLen },
			Error: ValidationError{Field: "company", Message: "Company name is too long"},
		},
	)
}

// Phone validates the optional phone field. Empty passes; otherwise only
// digits, spaces and "+().-" are allowed.
func Phone(value string) error {
	return First(
		Rule{
			Check: func() bool { return value == "" || phoneRegex.MatchString(value) },
			Error: ValidationError{Field: "phone", Message: "Invalid phone format"},
		},
		Rule{
			Check: func() bool { return len(value) <= MaxPhoneLen },
			Error: ValidationError{Field: "phone", Message: "Phone is too long"},
		},
	)
}

// Twitter validates the optional Twitter/X handle. The leading "@" and any
// internal whitespace are ignored for the format check.
func Twitter(value string) error {
	return First(
		Rule{
			Check: func() bool {
				return value == "" || handleRegex.MatchString(sanitizer.StripWhitespace(value))
			},
			Error: ValidationError{Field: "twitter", Message: "Invalid Twitter/X handle"},
		},
		Rule{
			Check: func() bool { return len(value) <= MaxTwitterLen },
			Error: ValidationError{Field: "twitter", Message: "Handle is too long"},
		},
	)
}

// Website validates the optional website field: empty, or a well-formed
// absolute URL.
func Website(value string) error {
	return First(
		Rule{
			Check: func() bool { return value == "" || isWellFormedURL(value) },
			Error: ValidationError{Field: "website", Message: "Invalid URL format"},
		},
		Rule{
			Check: func() bool { return len(value) <= MaxURLLen },
			Error: ValidationError{Field: "website", Message: "URL is too long"},
		},
	)
}

// Field dispatches to the rule set for the named field. Unknown field names
// validate clean, matching the permissive behavior of the form controller
// for fields without rules.
func Field(name, value string) error {
	switch name {
	case "name":
		return Name(value)
	case "title":
		return Title(value)
	case "company":
		return Company(value)
	case "phone":
		return Phone(value)
	case "twitter":
		return Twitter(value)
	case "website":
		return Website(value)
	default:
		return nil
	}
}

// isWellFormedURL requires an absolute URL with a scheme, the same bar a
// browser's URL constructor sets.
func isWellFormedURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}
	// Schemes like "http" and "https" need a host; opaque schemes such as
	// "mailto:" do not.
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return false
	}
	return true
}
