package webapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochlyapp/tochly-backend/pkg/invite"
	"github.com/tochlyapp/tochly-backend/pkg/notify"
	"github.com/tochlyapp/tochly-backend/pkg/tdb"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupEchoContext creates a test Echo context with the given JSON body.
func setupEchoContext(method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	encoded, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(encoded))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

type invitationTestCase struct {
	*testing.T
	stors      *stor.Stors
	codec      *invite.TokenCodec
	notifier   *notify.CapturingNotifier
	controller *InvitationController
	team       *model.Team
	admin      *model.User
	invitee    *model.User
}

func newInvitationTestCase(t *testing.T) *invitationTestCase {
	db, err := gorm.Open(sqlite.Open(tdb.SqliteInMemoryDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)

	err = tdb.RunMigrations(db)
	require.NoErrorf(t, err, "Migration failed with: %s", err)

	for _, table := range []string{"members", "profiles", "teams", "users"} {
		require.NoError(t, db.Exec("delete from "+table).Error)
	}

	tc := &invitationTestCase{
		T:        t,
		stors:    stor.NewGormStors(db),
		codec:    invite.NewTokenCodec("test-secret"),
		notifier: notify.NewCapturingNotifier(),
	}

	tc.populateDatabase()

	validator := invite.NewValidator(tc.stors.TeamStor, tc.stors.UserStor, tc.stors.MemberStor)
	issuer := invite.NewIssuer(validator, tc.codec, tc.stors.TeamStor, tc.notifier)
	acceptor := invite.NewAcceptor(tc.codec, validator, tc.stors.MemberStor)
	tc.controller = NewInvitationController(issuer, acceptor)

	return tc
}

func (tc *invitationTestCase) populateDatabase() {
	var err error

	tc.admin, err = tc.stors.UserStor.CreateUser(&model.User{
		Email: "inviter@example.com", FirstName: "Ahmad", LastName: "Ameen",
	})
	require.NoErrorf(tc.T, err, "Failed creating admin user: %s", err)

	tc.invitee, err = tc.stors.UserStor.CreateUser(&model.User{
		Email: "newuser@example.com", FirstName: "New", LastName: "User",
	})
	require.NoErrorf(tc.T, err, "Failed creating invitee user: %s", err)

	tc.team, err = tc.stors.TeamStor.CreateTeam(&model.Team{Name: "Test Team"})
	require.NoErrorf(tc.T, err, "Failed creating team: %s", err)

	_, err = tc.stors.MemberStor.CreateMember(&model.Member{
		UserID: tc.admin.ID, TeamID: tc.team.ID, Role: model.RoleAdmin, DisplayName: "Ahmad",
	})
	require.NoErrorf(tc.T, err, "Failed creating admin membership: %s", err)
}

func (tc *invitationTestCase) sendInviteBody() map[string]any {
	return map[string]any{
		"tid":           tc.team.TID,
		"invitee_email": "newuser@example.com",
		"role":          "member",
		"invited_by":    tc.admin.ID,
		"url":           "https://example.com/accept-invite",
	}
}

func TestSendInvite(t *testing.T) {
	tc := newInvitationTestCase(t)

	t.Run("Success", func(t *testing.T) {
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/send-invite", tc.sendInviteBody())

		err := tc.controller.SendInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invitation email is being sent.")

		invites := tc.notifier.Invites()
		require.Len(t, invites, 1)
		assert.Equal(t, "newuser@example.com", invites[0].ToEmail)
		assert.Equal(t, "Test Team", invites[0].TeamName)
		assert.Contains(t, invites[0].Link, "?token=")

		// The link token decodes to the request claims with a 24h expiry.
		token := invites[0].Link[strings.Index(invites[0].Link, "?token=")+len("?token="):]
		claims, err := tc.codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, tc.team.TID, claims.TID)
		assert.Equal(t, "member", claims.Role)

		expiresAt, err := claims.ExpiresAtTime()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), expiresAt, time.Minute)
	})

	t.Run("InvalidFieldsAggregated", func(t *testing.T) {
		body := map[string]any{
			"tid":           "",
			"invitee_email": "not-an-email",
			"role":          "invalid-role",
			"url":           "",
		}
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/send-invite", body)

		err := tc.controller.SendInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "detail")
		assert.Contains(t, rec.Body.String(), "invalid_email")
		assert.Contains(t, rec.Body.String(), "invalid_role")
	})

	t.Run("NonAdminInviter", func(t *testing.T) {
		member, err := tc.stors.UserStor.CreateUser(&model.User{
			Email: "member@example.com", FirstName: "Plain", LastName: "Member",
		})
		require.NoError(t, err)

		_, err = tc.stors.MemberStor.CreateMember(&model.Member{
			UserID: member.ID, TeamID: tc.team.ID, Role: model.RoleMember, DisplayName: "Plain Member",
		})
		require.NoError(t, err)

		body := tc.sendInviteBody()
		body["invited_by"] = member.ID
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/send-invite", body)

		err = tc.controller.SendInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "member_not_an_admin")
	})

	t.Run("NonexistentTeam", func(t *testing.T) {
		body := tc.sendInviteBody()
		body["tid"] = "T00000000"
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/send-invite", body)

		err := tc.controller.SendInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAcceptInvite(t *testing.T) {
	tc := newInvitationTestCase(t)

	issueToken := func(t *testing.T, expiresAt time.Time) string {
		token, err := tc.codec.Encode(invite.Claims{
			TID:          tc.team.TID,
			InviteeEmail: "newuser@example.com",
			InvitedBy:    tc.admin.ID,
			Role:         "member",
			URL:          "https://example.com/accept-invite",
			ExpiresAt:    expiresAt.Format(time.RFC3339),
		})
		require.NoError(t, err)
		return token
	}

	t.Run("Success", func(t *testing.T) {
		token := issueToken(t, time.Now().UTC().Add(24*time.Hour))
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{"token": token})

		err := tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Team membership created!")
		assert.Contains(t, rec.Body.String(), tc.team.TID)

		member, err := tc.stors.MemberStor.GetMemberByUserAndTeam(tc.invitee.ID, tc.team.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, member.Role)
		assert.Equal(t, "New User", member.DisplayName)
	})

	t.Run("SecondAcceptanceAlreadyMember", func(t *testing.T) {
		token := issueToken(t, time.Now().UTC().Add(24*time.Hour))
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{"token": token})

		err := tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingToken", func(t *testing.T) {
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{})

		err := tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing invitation token")
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := issueToken(t, time.Now().UTC().Add(-time.Hour))
		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{"token": token})

		err := tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invitation token has expired!")
	})

	t.Run("MalformedToken", func(t *testing.T) {
		before, err := tc.stors.MemberStor.ListMembersForTeam(tc.team.ID)
		require.NoError(t, err)

		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{"token": "invalid-token"})

		err = tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		// And no membership may have been created along the way.
		after, err := tc.stors.MemberStor.ListMembersForTeam(tc.team.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("InviteeWithoutAccount", func(t *testing.T) {
		token, err := tc.codec.Encode(invite.Claims{
			TID:          tc.team.TID,
			InviteeEmail: "stranger@example.com",
			InvitedBy:    tc.admin.ID,
			Role:         "member",
			URL:          "https://example.com/accept-invite",
			ExpiresAt:    time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		})
		require.NoError(t, err)

		ctx, rec := setupEchoContext(http.MethodPost, "/api/invitations/accept-invite", map[string]any{"token": token})

		err = tc.controller.AcceptInvite(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
