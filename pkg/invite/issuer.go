package invite

import (
	"time"

	"github.com/tochlyapp/tochly-backend/pkg/notify"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

// InvitationTTL is how long an issued invitation token stays valid.
const InvitationTTL = 24 * time.Hour

// Issuer mints invitation links. It validates the request, signs the claims
// into a token, and hands delivery to the notifier. Issuance succeeds once
// the notifier has accepted the job; delivery itself is out-of-band.
type Issuer struct {
	validator *Validator
	codec     *TokenCodec
	teams     stor.TeamStor
	notifier  notify.Notifier
	now       func() time.Time
}

func NewIssuer(validator *Validator, codec *TokenCodec, teams stor.TeamStor, notifier notify.Notifier) *Issuer {
	return &Issuer{
		validator: validator,
		codec:     codec,
		teams:     teams,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Issue validates req, signs invitation claims expiring InvitationTTL from
// now, and queues the invite email. It returns the invitation link.
func (i *Issuer) Issue(req SendInviteRequest) (string, error) {
	validated, err := i.validator.ValidateSendInvite(req)
	if err != nil {
		return "", err
	}

	expiresAt := i.now().UTC().Add(InvitationTTL)
	claims := Claims{
		TID:          validated.TID,
		InviteeEmail: validated.InviteeEmail,
		InvitedBy:    validated.InvitedBy,
		Role:         validated.Role,
		URL:          validated.URL,
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}

	token, err := i.codec.Encode(claims)
	if err != nil {
		return "", err
	}

	team, err := i.teams.GetTeamByTID(validated.TID)
	if err != nil {
		return "", err
	}

	link := validated.URL + "?token=" + token

	if err := i.notifier.QueueInvite(validated.InviteeEmail, team.Name, link); err != nil {
		return "", err
	}

	return link, nil
}
