package webapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
)

func TestCreateTeam(t *testing.T) {
	tc := newInvitationTestCase(t)
	controller := NewTeamController(tc.stors.TeamStor, tc.stors.UserStor, tc.stors.MemberStor)

	t.Run("Success", func(t *testing.T) {
		body := map[string]any{
			"name":        "Another Team",
			"description": "A second team",
			"created_by":  tc.admin.ID,
		}
		ctx, rec := setupEchoContext(http.MethodPost, "/api/teams", body)

		err := controller.CreateTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		team, err := tc.stors.TeamStor.GetTeamByName("Another Team")
		require.NoError(t, err)
		assert.Len(t, team.TID, 10)

		// The creator becomes the team owner.
		member, err := tc.stors.MemberStor.GetMemberByUserAndTeam(tc.admin.ID, team.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleOwner, member.Role)
		assert.Equal(t, "Ahmad Ameen", member.DisplayName)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		body := map[string]any{"name": "Test Team", "created_by": tc.admin.ID}
		ctx, rec := setupEchoContext(http.MethodPost, "/api/teams", body)

		err := controller.CreateTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownCreator", func(t *testing.T) {
		body := map[string]any{"name": "Orphan Team", "created_by": 9999}
		ctx, rec := setupEchoContext(http.MethodPost, "/api/teams", body)

		err := controller.CreateTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAndDeleteTeam(t *testing.T) {
	tc := newInvitationTestCase(t)
	controller := NewTeamController(tc.stors.TeamStor, tc.stors.UserStor, tc.stors.MemberStor)

	t.Run("GetTeam", func(t *testing.T) {
		ctx, rec := setupEchoContext(http.MethodGet, "/api/teams/"+tc.team.TID, nil)
		ctx.SetParamNames("tid")
		ctx.SetParamValues(tc.team.TID)

		err := controller.GetTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.team.TID)
	})

	t.Run("GetTeamNotFound", func(t *testing.T) {
		ctx, rec := setupEchoContext(http.MethodGet, "/api/teams/T00000000", nil)
		ctx.SetParamNames("tid")
		ctx.SetParamValues("T00000000")

		err := controller.GetTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DeleteTeamCascades", func(t *testing.T) {
		ctx, rec := setupEchoContext(http.MethodDelete, "/api/teams/"+tc.team.TID, nil)
		ctx.SetParamNames("tid")
		ctx.SetParamValues(tc.team.TID)

		err := controller.DeleteTeam(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, err = tc.stors.MemberStor.GetMemberByUserAndTeam(tc.admin.ID, tc.team.ID)
		require.Error(t, err)
	})
}
