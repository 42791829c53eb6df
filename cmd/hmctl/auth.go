package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/internal/errors"
)

func loginCommand(a *app) *cli.Command {
	var username string
	var password string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and store a session",
		Usage:   "hmctl login [--username NAME] [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVarP(&username, "username", "u", "", "account username")
			flags.StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
			return flags
		},
		Run: func(args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				if _, err := fmt.Scanln(&username); err != nil {
					return errors.Wrapf(err, "[login] read username")
				}
			}
			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			if err := a.session.Login(ctx, username, password); err != nil {
				return err
			}

			if user := a.session.User(); user != nil {
				a.render.Notice("Logged in as %s", user.Username)
			} else {
				a.render.Notice("Logged in")
			}
			return nil
		},
	}
}

func logoutCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Clear the stored session",
		Usage:   "hmctl logout",
		Run: func(args []string) error {
			a.session.Logout()
			a.render.Notice("Logged out")
			return nil
		},
	}
}

func whoamiCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the authenticated user",
		Usage:   "hmctl whoami",
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			claims := a.session.Claims()
			pairs := [][2]string{}
			if user := a.session.User(); user != nil {
				pairs = append(pairs,
					[2]string{"Username", user.Username},
					[2]string{"Email", user.Email},
				)
			} else if claims != nil {
				pairs = append(pairs,
					[2]string{"Username", claims.Username},
					[2]string{"Email", claims.Email},
				)
			}
			if organization := a.session.Organization(); organization != nil {
				pairs = append(pairs, [2]string{"Organization", organization.Name})
			}
			if claims != nil {
				pairs = append(pairs, [2]string{"Token expires", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST")})
			}
			a.render.Detail(pairs)
			return nil
		},
	}
}
