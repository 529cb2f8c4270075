package webapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tochlyapp/tochly-backend/pkg/invite"
)

type InvitationController struct {
	issuer   *invite.Issuer
	acceptor *invite.Acceptor
}

func NewInvitationController(issuer *invite.Issuer, acceptor *invite.Acceptor) *InvitationController {
	return &InvitationController{issuer: issuer, acceptor: acceptor}
}

// issueStatus maps each distinguishable issuance error to its HTTP status.
// Checked in order with errors.Is; no catch-all other than the final 500.
var issueStatus = []struct {
	err    error
	status int
}{
	{invite.ErrTeamNotFound, http.StatusNotFound},
	{invite.ErrInviterNotFound, http.StatusNotFound},
}

// acceptStatus does the same for acceptance errors. A forged or garbled token
// deliberately maps to a 500: it can't be produced by normal client usage and
// may indicate tampering.
var acceptStatus = []struct {
	err    error
	status int
}{
	{invite.ErrTeamNotFound, http.StatusBadRequest},
	{invite.ErrInviteeNotFound, http.StatusBadRequest},
	{invite.ErrAlreadyMember, http.StatusBadRequest},
	{invite.ErrInvalidToken, http.StatusInternalServerError},
}

func (c *InvitationController) SendInvite(ctx echo.Context) error {
	var req invite.SendInviteRequest

	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "malformed request body"})
	}

	if _, err := c.issuer.Issue(req); err != nil {
		var verr *invite.ValidationError
		if errors.As(err, &verr) {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": verr.Errors})
		}

		for _, entry := range issueStatus {
			if errors.Is(err, entry.err) {
				return ctx.JSON(entry.status, echo.Map{"detail": entry.err.Error()})
			}
		}

		return ctx.JSON(http.StatusInternalServerError, echo.Map{"detail": "unable to issue invitation"})
	}

	return ctx.JSON(http.StatusAccepted, echo.Map{"detail": "Invitation email is being sent."})
}

func (c *InvitationController) AcceptInvite(ctx echo.Context) error {
	var req struct {
		Token string `json:"token"`
	}

	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "malformed request body"})
	}

	member, err := c.acceptor.Accept(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, invite.ErrMissingToken):
			return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "Missing invitation token"})
		case errors.Is(err, invite.ErrInvitationExpired):
			return ctx.JSON(http.StatusNotAcceptable, echo.Map{"detail": "Invitation token has expired!"})
		}

		for _, entry := range acceptStatus {
			if errors.Is(err, entry.err) {
				return ctx.JSON(entry.status, echo.Map{"detail": entry.err.Error()})
			}
		}

		return ctx.JSON(http.StatusInternalServerError, echo.Map{"detail": "unable to accept invitation"})
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"detail": "Team membership created!",
		"data": echo.Map{
			"user_id": member.UserID,
			"tid":     member.Team.TID,
		},
	})
}
