package invite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

// Acceptor realizes pending invitations. Its only side effect is creating the
// membership row; the token itself is never invalidated, a second acceptance
// just fails ErrAlreadyMember on the insert.
type Acceptor struct {
	codec     *TokenCodec
	validator *Validator
	members   stor.MemberStor
}

func NewAcceptor(codec *TokenCodec, validator *Validator, members stor.MemberStor) *Acceptor {
	return &Acceptor{
		codec:     codec,
		validator: validator,
		members:   members,
	}
}

// Accept decodes and validates an invitation token and creates the membership
// it grants. A forged or garbled token comes back as ErrInvalidToken; an
// expired one as ErrInvitationExpired, which callers surface differently from
// every other failure. The insert-time uniqueness constraint is the authority
// on duplicate memberships, so two racing acceptances can't both succeed.
func (a *Acceptor) Accept(token string) (*model.Member, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	claims, err := a.codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	team, user, err := a.validator.ValidateAcceptClaims(claims)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		UserID:      user.ID,
		TeamID:      team.ID,
		Role:        claims.Role,
		DisplayName: user.FullName(),
	}

	created, err := a.members.CreateMember(member)
	switch {
	case errors.Is(err, stor.ErrDuplicate):
		return nil, ErrAlreadyMember
	case err != nil:
		return nil, err
	}

	created.User = user
	created.Team = team

	return created, nil
}
