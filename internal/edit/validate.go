package edit

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule identifies one validation rule.
type Rule string

const (
	RuleInvalidUser  Rule = "invalid-user"
	RuleNameRequired Rule = "name-required"
	RuleNameFormat   Rule = "name-format"
	RuleAgeRequired  Rule = "age-required"
	RuleAgeFormat    Rule = "age-format"
	RuleEmailFormat  Rule = "email-format"
)

var ruleMessages = map[Rule]string{
	RuleInvalidUser:  "Invalid user data for editing.",
	RuleNameRequired: "Please enter your name.",
	RuleNameFormat:   "Name can only contain alphabets and single spaces between words.",
	RuleAgeRequired:  "Please enter your age.",
	RuleAgeFormat:    "Age should be a number with two digits between 10 and 99.",
	RuleEmailFormat:  "Please enter a valid email address.",
}

// ValidationError is the first rule a buffer violates.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Rule) + ": " + e.Message
}

func violation(r Rule) *ValidationError {
	return &ValidationError{Rule: r, Message: ruleMessages[r]}
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z]+( [a-zA-Z]+)*$`)
	ageRe   = regexp.MustCompile(`^\d{2}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}(\.[a-zA-Z]{2,4})?$`)
)

// Validate checks b rule by rule and returns the first violation, or nil.
// A nil buffer means no record is selected.
func Validate(b *Buffer) *ValidationError {
	if b == nil {
		return violation(RuleInvalidUser)
	}
	if strings.TrimSpace(b.Name) == "" {
		return violation(RuleNameRequired)
	}
	if !ValidName(b.Name) {
		return violation(RuleNameFormat)
	}
	if b.Age == 0 {
		return violation(RuleAgeRequired)
	}
	if !ValidAge(strconv.Itoa(b.Age)) {
		return violation(RuleAgeFormat)
	}
	if !ValidEmail(b.Email) {
		return violation(RuleEmailFormat)
	}
	return nil
}

// ValidName reports whether s is runs of ASCII letters joined by single spaces.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidAge reports whether s is exactly two digits with a value in [10, 99].
func ValidAge(s string) bool {
	if !ageRe.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 10 && n <= 99
}

func ValidEmail(s string) bool {
	return s != "" && emailRe.MatchString(s)
}

// ParseAge reads the leading decimal integer of s, skipping leading
// whitespace and allowing a sign. It returns 0 when there is none, which is
// how a numeric text field reports "no age".
func ParseAge(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
