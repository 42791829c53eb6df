package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/internal/utils"
	"github.com/homemanager/hmctl/session"
)

func profileCommand(a *app) *cli.Command {
	var email string
	var firstName string
	var lastName string

	return &cli.Command{
		Name:    "profile",
		Summary: "Update the authenticated user's profile",
		Usage:   "hmctl profile [--email ADDR] [--first-name NAME] [--last-name NAME]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("profile", pflag.ContinueOnError)
			flags.StringVar(&email, "email", "", "new email address")
			flags.StringVar(&firstName, "first-name", "", "new first name")
			flags.StringVar(&lastName, "last-name", "", "new last name")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			update := api.ProfileUpdate{}
			patch := session.UserPatch{}
			if email != "" {
				update.Email = utils.Ptr(email)
				patch.Email = update.Email
			}
			if firstName != "" {
				update.FirstName = utils.Ptr(firstName)
				patch.FirstName = update.FirstName
			}
			if lastName != "" {
				update.LastName = utils.Ptr(lastName)
				patch.LastName = update.LastName
			}
			if update.Email == nil && update.FirstName == nil && update.LastName == nil {
				return whoamiCommand(a).Run(nil)
			}

			user, err := a.client.Users.UpdateProfile(context.Background(), update)
			if err != nil {
				return err
			}
			a.session.UpdateUser(patch)

			a.render.Detail([][2]string{
				{"Username", user.Username},
				{"Email", user.Email},
				{"Name", user.FirstName + " " + user.LastName},
			})
			return nil
		},
	}
}

func orgCommand(a *app) *cli.Command {
	var name string
	var email string
	var phone string

	return &cli.Command{
		Name:    "org",
		Summary: "Show or update the organization",
		Usage:   "hmctl org [--name NAME] [--email ADDR] [--phone NUMBER]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("org", pflag.ContinueOnError)
			flags.StringVar(&name, "name", "", "new organization name")
			flags.StringVar(&email, "email", "", "new contact email")
			flags.StringVar(&phone, "phone", "", "new contact phone")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx := context.Background()

			organization, err := a.client.Organizations.Current(ctx)
			if err != nil {
				return err
			}

			if name != "" || email != "" || phone != "" {
				body := map[string]string{}
				patch := session.OrganizationPatch{}
				if name != "" {
					body["name"] = name
					patch.Name = utils.Ptr(name)
				}
				if email != "" {
					body["email"] = email
					patch.Email = utils.Ptr(email)
				}
				if phone != "" {
					body["phone"] = phone
					patch.Phone = utils.Ptr(phone)
				}
				organization, err = a.client.Organizations.Update(ctx, organization.ID, body)
				if err != nil {
					return err
				}
				a.session.UpdateOrganization(patch)
			}

			a.render.Detail([][2]string{
				{"Name", organization.Name},
				{"Slug", organization.Slug},
				{"Email", organization.Email},
				{"Phone", organization.Phone},
			})
			return nil
		},
	}
}
