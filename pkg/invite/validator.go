package invite

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

// SendInviteRequest is the input to issuing an invitation.
type SendInviteRequest struct {
	TID          string `json:"tid"`
	InviteeEmail string `json:"invitee_email"`
	Role         string `json:"role"`
	InvitedBy    int    `json:"invited_by"`
	URL          string `json:"url"`
}

const maxURLLength = 300

var tidPattern = regexp.MustCompile(`^[a-zA-Z0-9]{9,10}$`)

// Validator checks invitation requests and decoded invitation claims against
// the identity store. Both surfaces share one rule set; acceptance runs the
// expiry check plus the subset of reference checks that can go stale between
// issuance and acceptance.
type Validator struct {
	teams   stor.TeamStor
	users   stor.UserStor
	members stor.MemberStor
	now     func() time.Time
}

func NewValidator(teams stor.TeamStor, users stor.UserStor, members stor.MemberStor) *Validator {
	return &Validator{
		teams:   teams,
		users:   users,
		members: members,
		now:     time.Now,
	}
}

// fieldStep is one step of the ordered field validation pipeline. Steps run in
// declaration order, mutate the request to normalize it, and append failures
// rather than short-circuiting, so later steps see normalized values and the
// caller sees every violation at once.
type fieldStep func(req *SendInviteRequest, verr *ValidationError)

var sendInviteSteps = []fieldStep{
	normalizeStrings,
	checkTID,
	checkInviteeEmail,
	checkRole,
	checkInvitedBy,
	checkURL,
}

// ValidateSendInvite validates an invitation request. It returns the
// normalized request on success. Field-shape failures come back aggregated in
// a *ValidationError; a team or inviter that doesn't exist comes back as
// ErrTeamNotFound or ErrInviterNotFound.
func (v *Validator) ValidateSendInvite(req SendInviteRequest) (SendInviteRequest, error) {
	verr := &ValidationError{}

	for _, step := range sendInviteSteps {
		step(&req, verr)
	}
	if verr.hasErrors() {
		return req, verr
	}

	team, err := v.teams.GetTeamByTID(req.TID)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		return req, ErrTeamNotFound
	case err != nil:
		return req, err
	}

	inviter, err := v.members.GetMemberByUserAndTeam(req.InvitedBy, team.ID)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		return req, ErrInviterNotFound
	case err != nil:
		return req, err
	}

	// Only admins may issue invitations.
	if !inviter.IsAdmin() {
		verr.add("invited_by", "member_not_an_admin", "Inviting member must be an admin")
	}

	if v.members.MemberWithEmailExists(req.TID, req.InviteeEmail) {
		verr.add("invitee_email", "cannot_invite_a_member", "Invitee is already a team member")
	}

	if verr.hasErrors() {
		return req, verr
	}

	return req, nil
}

// ValidateAcceptClaims validates decoded claims at acceptance time and
// resolves the team and invitee they reference. Expiry is strict: a token
// whose expires_at equals the current time is already expired.
func (v *Validator) ValidateAcceptClaims(claims Claims) (*model.Team, *model.User, error) {
	expiresAt, err := claims.ExpiresAtTime()
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	if !v.now().UTC().Before(expiresAt) {
		return nil, nil, ErrInvitationExpired
	}

	team, err := v.teams.GetTeamByTID(claims.TID)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		return nil, nil, ErrTeamNotFound
	case err != nil:
		return nil, nil, err
	}

	// The invitation targets an email, not a user id: the invitee must hold
	// an account by the time they accept.
	user, err := v.users.GetUserByEmail(claims.InviteeEmail)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		return nil, nil, ErrInviteeNotFound
	case err != nil:
		return nil, nil, err
	}

	return team, user, nil
}

func normalizeStrings(req *SendInviteRequest, _ *ValidationError) {
	req.TID = strings.TrimSpace(req.TID)
	req.InviteeEmail = strings.TrimSpace(req.InviteeEmail)
	req.URL = strings.TrimSpace(req.URL)
	req.Role = strings.TrimSpace(req.Role)

	// Roles match case-insensitively; store the canonical lowercase form.
	if lowered := strings.ToLower(req.Role); lowered == model.RoleAdmin || lowered == model.RoleMember {
		req.Role = lowered
	}
}

func checkTID(req *SendInviteRequest, verr *ValidationError) {
	switch {
	case req.TID == "":
		verr.add("tid", "required", "tid is required")
	case !tidPattern.MatchString(req.TID):
		verr.add("tid", "invalid_tid", "tid must be 9 to 10 alphanumeric characters")
	}
}

func checkInviteeEmail(req *SendInviteRequest, verr *ValidationError) {
	if req.InviteeEmail == "" {
		verr.add("invitee_email", "required", "invitee_email is required")
		return
	}

	if _, err := mail.ParseAddress(req.InviteeEmail); err != nil {
		verr.add("invitee_email", "invalid_email", "invitee_email is not a valid email address")
	}
}

func checkRole(req *SendInviteRequest, verr *ValidationError) {
	switch req.Role {
	case "":
		verr.add("role", "required", "role is required")
	case model.RoleAdmin, model.RoleMember:
		// normalized by an earlier step
	default:
		verr.add("role", "invalid_role", "role must be admin or member")
	}
}

func checkInvitedBy(req *SendInviteRequest, verr *ValidationError) {
	if req.InvitedBy <= 0 {
		verr.add("invited_by", "required", "invited_by is required")
	}
}

func checkURL(req *SendInviteRequest, verr *ValidationError) {
	switch {
	case req.URL == "":
		verr.add("url", "required", "url is required")
	case len(req.URL) > maxURLLength:
		verr.add("url", "url_too_long", "url must be at most 300 characters")
	}
}
