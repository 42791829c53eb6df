package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/internal/config"
	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/views"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.Wrapf(errors.ErrInternal, "[run] panic recovered")
		}
	}()

	c := config.New()
	log := newLogger(c)

	a, err := newApp(c, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.GetHTTPTimeout())
	a.session.Initialize(ctx)
	cancel()

	root := rootCommand(a)
	if len(args) == 0 {
		displayAppname(c.GetAppName())
		root.PrintHelp(os.Stderr)
		return nil
	}
	return root.Execute(args)
}

func rootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "hmctl",
		Summary: "Property management terminal client",
		Subcommands: []*cli.Command{
			loginCommand(a),
			logoutCommand(a),
			whoamiCommand(a),
			profileCommand(a),
			orgCommand(a),
			dashboardCommand(a),
			listCommand(a, "properties", views.PropertiesTitle,
				func(ctx context.Context) ([]model.Property, error) { return views.LoadProperties(ctx, a.client) },
				views.NewPropertiesView,
				createPropertyCommand(a), updatePropertyCommand(a), addUnitCommand(a), deletePropertyCommand(a)),
			listCommand(a, "tenants", views.TenantsTitle,
				func(ctx context.Context) ([]views.TenantRow, error) { return views.LoadTenantRows(ctx, a.client) },
				views.NewTenantsView,
				createTenantCommand(a), updateTenantCommand(a), deleteTenantCommand(a)),
			listCommand(a, "payments", views.PaymentsTitle,
				func(ctx context.Context) ([]views.PaymentRow, error) { return views.LoadPaymentRows(ctx, a.client) },
				views.NewPaymentsView,
				createPaymentCommand(a), markPaidCommand(a)),
			listCommand(a, "tickets", views.TicketsTitle,
				func(ctx context.Context) ([]views.TicketRow, error) { return views.LoadTicketRows(ctx, a.client) },
				views.NewTicketsView,
				createTicketCommand(a), assignTicketCommand(a), resolveTicketCommand(a)),
			listCommand(a, "notices", views.NoticesTitle,
				func(ctx context.Context) ([]views.NoticeRow, error) { return views.LoadNoticeRows(ctx, a.client) },
				views.NewNoticesView,
				createNoticeCommand(a), archiveNoticeCommand(a)),
			listCommand(a, "team", views.TeamTitle,
				func(ctx context.Context) ([]model.Member, error) { return views.LoadMembers(ctx, a.client) },
				views.NewTeamView,
				inviteMemberCommand(a), setRoleCommand(a), removeMemberCommand(a)),
			leasesCommand(a, createLeaseCommand(a), deleteLeaseCommand(a)),
		},
	}
}

func newLogger(c config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
