/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/tochlyapp/tochly-backend/pkg/config"
	"github.com/tochlyapp/tochly-backend/pkg/invite"
	"github.com/tochlyapp/tochly-backend/pkg/notify"
	"github.com/tochlyapp/tochly-backend/pkg/tdb"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tochlyd",
	Short: "Run the tochly API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		c := config.MustLoadFromDotenv()
		db := tdb.MustConnectToDB()
		stors := stor.NewGormStors(db)

		// The signing secret is process-wide configuration: loaded once
		// here, handed to the codec explicitly, never read from globals
		// below this point.
		codec := invite.NewTokenCodec(c.MustGetKey("SECRET_KEY"))

		notifier := notify.NewSMTPNotifier(notify.SMTPOpts{
			Host:     c.MustGetKey("SMTP_HOST"),
			Port:     c.GetKeyWithDefault("SMTP_PORT", "587"),
			Username: c.GetKey("SMTP_USER"),
			Password: c.GetKey("SMTP_PASSWORD"),
			From:     c.MustGetKey("SMTP_FROM"),
		})

		validator := invite.NewValidator(stors.TeamStor, stors.UserStor, stors.MemberStor)
		issuer := invite.NewIssuer(validator, codec, stors.TeamStor, notifier)
		acceptor := invite.NewAcceptor(codec, validator, stors.MemberStor)

		setupRoutes(e, RouteOpts{
			stors:    stors,
			issuer:   issuer,
			acceptor: acceptor,
		})

		if err := e.Start(":" + c.GetKeyWithDefault("TOCHLYD_PORT", "1380")); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
