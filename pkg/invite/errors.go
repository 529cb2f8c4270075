package invite

import (
	"errors"
	"fmt"
	"strings"
)

// Reference and business-rule errors raised while issuing or accepting an
// invitation. The webapi boundary maps each of these to its HTTP status; no
// catch-all handling happens below that layer.
var (
	ErrMissingToken      = errors.New("missing invitation token")
	ErrInvalidToken      = errors.New("invalid invitation token")
	ErrInvitationExpired = errors.New("invitation token has expired")
	ErrTeamNotFound      = errors.New("team not found")
	ErrInviteeNotFound   = errors.New("invitee not found")
	ErrInviterNotFound   = errors.New("inviter is not a member of the team")
	ErrAlreadyMember     = errors.New("invitee is already a team member")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every field-level failure found while validating
// an invitation request. Validation never stops at the first bad field, so a
// caller sees all violations at once.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, code, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Code: code, Message: message})
}

func (e *ValidationError) hasErrors() bool {
	return len(e.Errors) != 0
}
