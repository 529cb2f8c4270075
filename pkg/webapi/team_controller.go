package webapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

type TeamController struct {
	teamStor   stor.TeamStor
	userStor   stor.UserStor
	memberStor stor.MemberStor
}

func NewTeamController(teamStor stor.TeamStor, userStor stor.UserStor, memberStor stor.MemberStor) *TeamController {
	return &TeamController{teamStor: teamStor, userStor: userStor, memberStor: memberStor}
}

// CreateTeam creates a team and makes the creating user its owner. The public
// tid is generated by the stor; one supplied in the request is ignored.
func (c *TeamController) CreateTeam(ctx echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CreatedBy   int    `json:"created_by"`
	}

	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "malformed request body"})
	}

	if req.Name == "" {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "name is required"})
	}

	creator, err := c.userStor.GetUserByID(req.CreatedBy)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "creating user does not exist"})
	} else if err != nil {
		return err
	}

	team, err := c.teamStor.CreateTeam(&model.Team{Name: req.Name, Description: req.Description})
	if errors.Is(err, stor.ErrDuplicate) {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "a team with that name already exists"})
	} else if err != nil {
		return err
	}

	_, err = c.memberStor.CreateMember(&model.Member{
		UserID:      creator.ID,
		TeamID:      team.ID,
		Role:        model.RoleOwner,
		DisplayName: creator.FullName(),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, team)
}

func (c *TeamController) GetTeam(ctx echo.Context) error {
	team, err := c.teamStor.GetTeamByTID(ctx.Param("tid"))
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, team)
}

// GetTeamByName looks a team up by its unique name, via the ?name= query
// parameter.
func (c *TeamController) GetTeamByName(ctx echo.Context) error {
	name := ctx.QueryParam("name")
	if name == "" {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "name query parameter is required"})
	}

	team, err := c.teamStor.GetTeamByName(name)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team and cascades to its membership rows.
func (c *TeamController) DeleteTeam(ctx echo.Context) error {
	team, err := c.teamStor.GetTeamByTID(ctx.Param("tid"))
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	if err := c.teamStor.DeleteTeam(team); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *TeamController) ListTeamMembers(ctx echo.Context) error {
	team, err := c.teamStor.GetTeamByTID(ctx.Param("tid"))
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "team not found"})
	} else if err != nil {
		return err
	}

	members, err := c.memberStor.ListMembersForTeam(team.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, members)
}

func (c *TeamController) ListUserTeams(ctx echo.Context) error {
	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "user_id must be an integer"})
	}

	teams, err := c.teamStor.ListTeamsForUser(userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, teams)
}
