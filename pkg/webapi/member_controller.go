package webapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

type MemberController struct {
	teamStor   stor.TeamStor
	memberStor stor.MemberStor
}

func NewMemberController(teamStor stor.TeamStor, memberStor stor.MemberStor) *MemberController {
	return &MemberController{teamStor: teamStor, memberStor: memberStor}
}

// UpdateMember updates the mutable fields of a membership row. Role changes
// normalize to lowercase and must name a known role; the same goes for the
// presence status.
func (c *MemberController) UpdateMember(ctx echo.Context) error {
	var req struct {
		Role              string  `json:"role"`
		DisplayName       string  `json:"display_name"`
		Title             string  `json:"title"`
		PhoneNumber       *string `json:"phone_number"`
		Online            *bool   `json:"online"`
		Status            *string `json:"status"`
		ProfilePictureURL string  `json:"profile_picture_url"`
	}

	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "malformed request body"})
	}

	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "user_id must be an integer"})
	}

	team, err := c.teamStor.GetTeamByTID(ctx.Param("tid"))
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	member, err := c.memberStor.GetMemberByUserAndTeam(userID, team.ID)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "member not found"})
	} else if err != nil {
		return err
	}

	updates := map[string]any{}

	if req.DisplayName != "" {
		updates["display_name"] = req.DisplayName
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.ProfilePictureURL != "" {
		updates["profile_picture_url"] = req.ProfilePictureURL
	}

	if req.Role != "" {
		role := strings.ToLower(strings.TrimSpace(req.Role))
		if !model.ValidRole(role) {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid role"})
		}
		updates["role"] = role
	}

	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !model.ValidStatus(status) {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid status"})
		}
		updates["status"] = status
	}

	if req.Online != nil {
		updates["online"] = *req.Online
	}

	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}

	updated, err := c.memberStor.UpdateMember(member, updates)
	if errors.Is(err, stor.ErrDuplicate) {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "phone number is already in use"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *MemberController) GetMember(ctx echo.Context) error {
	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "user_id must be an integer"})
	}

	team, err := c.teamStor.GetTeamByTID(ctx.Param("tid"))
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	member, err := c.memberStor.GetMemberByUserAndTeam(userID, team.ID)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "member not found"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, member)
}
