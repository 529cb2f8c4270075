package cmd

import (
	"github.com/labstack/echo/v4"
	"github.com/tochlyapp/tochly-backend/pkg/invite"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
	"github.com/tochlyapp/tochly-backend/pkg/webapi"
)

type RouteOpts struct {
	stors    *stor.Stors
	issuer   *invite.Issuer
	acceptor *invite.Acceptor
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api")

	invitationController := webapi.NewInvitationController(opts.issuer, opts.acceptor)
	g.POST("/invitations/send-invite", invitationController.SendInvite)
	g.POST("/invitations/accept-invite", invitationController.AcceptInvite)

	teamController := webapi.NewTeamController(opts.stors.TeamStor, opts.stors.UserStor, opts.stors.MemberStor)
	g.POST("/teams", teamController.CreateTeam)
	g.GET("/teams", teamController.GetTeamByName)
	g.GET("/teams/:tid", teamController.GetTeam)
	g.DELETE("/teams/:tid", teamController.DeleteTeam)
	g.GET("/teams/:tid/members", teamController.ListTeamMembers)
	g.GET("/users/:user_id/teams", teamController.ListUserTeams)

	memberController := webapi.NewMemberController(opts.stors.TeamStor, opts.stors.MemberStor)
	g.GET("/teams/:tid/members/:user_id", memberController.GetMember)
	g.PUT("/teams/:tid/members/:user_id", memberController.UpdateMember)

	profileController := webapi.NewProfileController(opts.stors.UserStor, opts.stors.ProfileStor)
	g.GET("/profiles/:user_id", profileController.GetProfile)
	g.PUT("/profiles/:user_id", profileController.UpdateProfile)
}
