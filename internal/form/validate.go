package form

import (
	"regexp"
	"strings"
	"time"

	"employee-directory/internal/models"
)

const dateLayout = "2006-01-02"

// space is the ECMAScript \s class. RE2's \s is ASCII only.
const space = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
	emailRegex = regexp.MustCompile(`^[^@` + space + `]+@[^@` + space + `]+\.[^@` + space + `]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// Rule identifies a validation rule. Rules run in ascending order.
type Rule int

const (
	RuleNameRequired Rule = iota + 1
	RuleNameFormat
	RuleEmailRequired
	RuleEmailFormat
	RulePhoneFormat
	RuleDepartmentRequired
	RuleDateOfJoining
	RuleRoleRequired
)

const (
	MsgNameRequired       = "Name cannot be empty."
	MsgNameFormat         = "Name should contain only alphabets and spaces."
	MsgEmailRequired      = "Email cannot be empty."
	MsgEmailFormat        = "Please enter a valid email address."
	MsgPhoneFormat        = "Phone number should contain exactly 10 digits."
	MsgDepartmentRequired = "Please select a department."
	MsgDateOfJoining      = "Please select a valid date of joining."
	MsgDateInFuture       = "Date of joining cannot be in the future."
	MsgRoleRequired       = "Role cannot be empty."
)

// ValidationError reports the first rule a draft violates.
type ValidationError struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type rule struct {
	id    Rule
	field string
	// check returns the failure message, or "" when the draft passes.
	check func(d models.Draft, now time.Time) string
}

var rules = []rule{
	{RuleNameRequired, models.FieldName, func(d models.Draft, _ time.Time) string {
		return failIf(strings.TrimSpace(d.Name) == "", MsgNameRequired)
	}},
	{RuleNameFormat, models.FieldName, func(d models.Draft, _ time.Time) string {
		return failIf(!nameRegex.MatchString(d.Name), MsgNameFormat)
	}},
	{RuleEmailRequired, models.FieldEmail, func(d models.Draft, _ time.Time) string {
		return failIf(strings.TrimSpace(d.Email) == "", MsgEmailRequired)
	}},
	{RuleEmailFormat, models.FieldEmail, func(d models.Draft, _ time.Time) string {
		return failIf(!emailRegex.MatchString(d.Email), MsgEmailFormat)
	}},
	{RulePhoneFormat, models.FieldPhoneNumber, func(d models.Draft, _ time.Time) string {
		return failIf(!phoneRegex.MatchString(d.PhoneNumber), MsgPhoneFormat)
	}},
	{RuleDepartmentRequired, models.FieldDepartment, func(d models.Draft, _ time.Time) string {
		return failIf(!models.IsValidDepartment(d.Department), MsgDepartmentRequired)
	}},
	{RuleDateOfJoining, models.FieldDateOfJoining, checkDateOfJoining},
	{RuleRoleRequired, models.FieldRole, func(d models.Draft, _ time.Time) string {
		return failIf(strings.TrimSpace(d.Role) == "", MsgRoleRequired)
	}},
}

func failIf(cond bool, msg string) string {
	if cond {
		return msg
	}
	return ""
}

// checkDateOfJoining accepts today and any earlier day, compared by
// calendar day in now's location.
func checkDateOfJoining(d models.Draft, now time.Time) string {
	if d.DateOfJoining == "" {
		return MsgDateOfJoining
	}
	joined, err := time.ParseInLocation(dateLayout, d.DateOfJoining, now.Location())
	if err != nil {
		return MsgDateOfJoining
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if joined.After(today) {
		return MsgDateInFuture
	}
	return ""
}

// Validate runs the rules in order and stops at the first failure. It
// returns nil when the draft may be submitted.
func Validate(d models.Draft, now time.Time) *ValidationError {
	for _, r := range rules {
		if msg := r.check(d, now); msg != "" {
			return &ValidationError{Rule: r.id, Field: r.field, Message: msg}
		}
	}
	return nil
}
