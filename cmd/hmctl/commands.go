package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/tabular"
	"github.com/homemanager/hmctl/views"
)

func listCommand[T any](
	a *app,
	name, title string,
	load func(context.Context) ([]T, error),
	newView func(views.TableOptions) *tabular.View[T],
	subcommands ...*cli.Command,
) *cli.Command {
	var flags listFlags

	return &cli.Command{
		Name:        name,
		Summary:     "List " + name,
		Usage:       "hmctl " + name + " [flags]",
		Subcommands: subcommands,
		Flags: func() *pflag.FlagSet {
			return flags.flagSet(name, a.config.GetDefaultPageSize())
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx := context.Background()
			rows, err := load(ctx)
			if err != nil {
				return err
			}
			return showList(a, newView(a.tableOptions(flags.pageSize)), title, rows, &flags)
		},
	}
}

func leasesCommand(a *app, subcommands ...*cli.Command) *cli.Command {
	var flags listFlags

	return &cli.Command{
		Name:        "leases",
		Summary:     "List leases",
		Usage:       "hmctl leases [flags]",
		Subcommands: subcommands,
		Flags: func() *pflag.FlagSet {
			return flags.flagSet("leases", a.config.GetDefaultPageSize())
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			rows, dropped, err := views.LoadLeaseRows(context.Background(), a.client)
			if err != nil {
				return err
			}
			if dropped > 0 {
				a.render.Notice("Skipped %d leases with missing unit or tenant records", dropped)
			}
			return showList(a, views.NewLeasesView(a.tableOptions(flags.pageSize)), views.LeasesTitle, rows, &flags)
		},
	}
}

func dashboardCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show the portfolio summary",
		Usage:   "hmctl dashboard",
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			summary, err := views.LoadDashboard(context.Background(), a.client)
			if err != nil {
				return err
			}

			a.render.Title(views.DashboardTitle)
			pairs := make([][2]string, 0, 8)
			for _, kpi := range views.DashboardKPIs(summary) {
				pairs = append(pairs, [2]string{kpi.Label, kpi.Value})
			}
			a.render.Detail(pairs)
			return nil
		},
	}
}
