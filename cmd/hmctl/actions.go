package main

import (
	"context"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/tabular"
	"github.com/homemanager/hmctl/views"
)

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.Wrapf(errors.ErrValidation, "[parseID] exactly one record id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrValidation, "[parseID] %q is not a numeric id", args[0])
	}
	return id, nil
}

func findRow[T any](rows []T, id func(T) int64, want int64) (T, bool) {
	for _, row := range rows {
		if id(row) == want {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// rowActionCommand is one entry of a page's row menu exposed as a
// subcommand: it loads the page's rows, picks the record by id, and
// dispatches the action through the page's declared menu.
func rowActionCommand[T any](
	a *app,
	name, summary, usage string,
	kind tabular.ActionKind,
	load func(context.Context) ([]T, error),
	id func(T) int64,
	menu func(func(tabular.ActionKind, T) error) tabular.ActionSet[T],
	handle func(context.Context, T) error,
) *cli.Command {
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			rowID, err := parseID(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			rows, err := load(ctx)
			if err != nil {
				return err
			}
			row, ok := findRow(rows, id, rowID)
			if !ok {
				return errors.Wrapf(errors.ErrNotFound, "[%s] no record with id %d", name, rowID)
			}

			set := menu(func(_ tabular.ActionKind, r T) error {
				return handle(ctx, r)
			})
			return set.Invoke(kind, row)
		},
	}
}

func deletePropertyCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"delete", "Delete a property", "hmctl properties delete <id>",
		tabular.ActionDelete,
		func(ctx context.Context) ([]model.Property, error) { return views.LoadProperties(ctx, a.client) },
		func(p model.Property) int64 { return p.ID },
		views.PropertyActions,
		func(ctx context.Context, p model.Property) error {
			if err := a.client.Properties.Delete(ctx, p.ID); err != nil {
				return err
			}
			a.render.Notice("Deleted property %d (%s)", p.ID, p.Name)
			return nil
		})
}

func deleteTenantCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"delete", "Delete a tenant", "hmctl tenants delete <id>",
		tabular.ActionDelete,
		func(ctx context.Context) ([]views.TenantRow, error) { return views.LoadTenantRows(ctx, a.client) },
		func(r views.TenantRow) int64 { return r.Tenant.ID },
		views.TenantActions,
		func(ctx context.Context, r views.TenantRow) error {
			if err := a.client.Tenants.Delete(ctx, r.Tenant.ID); err != nil {
				return err
			}
			a.render.Notice("Deleted tenant %d (%s)", r.Tenant.ID, r.Tenant.Name)
			return nil
		})
}

func markPaidCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"mark-paid", "Mark a payment as paid", "hmctl payments mark-paid <id>",
		tabular.ActionMarkPaid,
		func(ctx context.Context) ([]views.PaymentRow, error) { return views.LoadPaymentRows(ctx, a.client) },
		func(r views.PaymentRow) int64 { return r.Payment.ID },
		views.PaymentActions,
		func(ctx context.Context, r views.PaymentRow) error {
			payment, err := a.client.Payments.MarkPaid(ctx, r.Payment.ID)
			if err != nil {
				return err
			}
			a.render.Notice("Payment %d is now %s", payment.ID, payment.Status)
			return nil
		})
}

func resolveTicketCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"resolve", "Mark a ticket resolved", "hmctl tickets resolve <id>",
		tabular.ActionResolve,
		func(ctx context.Context) ([]views.TicketRow, error) { return views.LoadTicketRows(ctx, a.client) },
		func(r views.TicketRow) int64 { return r.Ticket.ID },
		views.TicketActions,
		func(ctx context.Context, r views.TicketRow) error {
			body := map[string]string{"status": model.TicketStatusResolved}
			ticket, err := a.client.Maintenance.UpdateTicket(ctx, r.Ticket.ID, body)
			if err != nil {
				return err
			}
			a.render.Notice("Ticket %d is now %s", ticket.ID, ticket.Status)
			return nil
		})
}

func assignTicketCommand(a *app) *cli.Command {
	var providerID int64

	command := rowActionCommand(a,
		"assign", "Assign a ticket to a service provider", "hmctl tickets assign <id> --provider ID",
		tabular.ActionAssign,
		func(ctx context.Context) ([]views.TicketRow, error) { return views.LoadTicketRows(ctx, a.client) },
		func(r views.TicketRow) int64 { return r.Ticket.ID },
		views.TicketActions,
		func(ctx context.Context, r views.TicketRow) error {
			if providerID <= 0 {
				return errors.Wrapf(errors.ErrValidation, "[assign] --provider is required")
			}
			body := map[string]any{
				"assigned_to": providerID,
				"status":      model.TicketStatusAssigned,
			}
			ticket, err := a.client.Maintenance.UpdateTicket(ctx, r.Ticket.ID, body)
			if err != nil {
				return err
			}
			a.render.Notice("Ticket %d assigned", ticket.ID)
			return nil
		})

	command.Flags = func() *pflag.FlagSet {
		flags := pflag.NewFlagSet("assign", pflag.ContinueOnError)
		flags.Int64Var(&providerID, "provider", 0, "service provider id")
		return flags
	}
	return command
}

func archiveNoticeCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"archive", "Archive a notice", "hmctl notices archive <id>",
		tabular.ActionArchive,
		func(ctx context.Context) ([]views.NoticeRow, error) { return views.LoadNoticeRows(ctx, a.client) },
		func(r views.NoticeRow) int64 { return r.Notice.ID },
		views.NoticeActions,
		func(ctx context.Context, r views.NoticeRow) error {
			notice, err := a.client.Notices.Archive(ctx, r.Notice.ID)
			if err != nil {
				return err
			}
			a.render.Notice("Archived notice %d (%s)", notice.ID, notice.Title)
			return nil
		})
}

func deleteLeaseCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"delete", "Delete a lease", "hmctl leases delete <id>",
		tabular.ActionDelete,
		func(ctx context.Context) ([]views.LeaseRow, error) {
			rows, _, err := views.LoadLeaseRows(ctx, a.client)
			return rows, err
		},
		func(r views.LeaseRow) int64 { return r.Lease.ID },
		views.LeaseActions,
		func(ctx context.Context, r views.LeaseRow) error {
			if err := a.client.Tenants.DeleteLease(ctx, r.Lease.ID); err != nil {
				return err
			}
			a.render.Notice("Deleted lease %d", r.Lease.ID)
			return nil
		})
}

func setRoleCommand(a *app) *cli.Command {
	var role string

	command := rowActionCommand(a,
		"set-role", "Change a team member's role", "hmctl team set-role <id> --role ROLE",
		tabular.ActionEdit,
		func(ctx context.Context) ([]model.Member, error) { return views.LoadMembers(ctx, a.client) },
		func(m model.Member) int64 { return m.ID },
		views.TeamActions,
		func(ctx context.Context, m model.Member) error {
			if role == "" {
				return errors.Wrapf(errors.ErrValidation, "[set-role] --role is required")
			}
			member, err := a.client.Organizations.UpdateMemberRole(ctx, m.ID, role)
			if err != nil {
				return err
			}
			a.render.Notice("%s is now %s", views.MemberName(*member), member.Role)
			return nil
		})

	command.Flags = func() *pflag.FlagSet {
		flags := pflag.NewFlagSet("set-role", pflag.ContinueOnError)
		flags.StringVar(&role, "role", "", "owner, manager, caretaker, or viewer")
		return flags
	}
	return command
}

func removeMemberCommand(a *app) *cli.Command {
	return rowActionCommand(a,
		"remove", "Remove a team member", "hmctl team remove <id>",
		tabular.ActionDelete,
		func(ctx context.Context) ([]model.Member, error) { return views.LoadMembers(ctx, a.client) },
		func(m model.Member) int64 { return m.ID },
		views.TeamActions,
		func(ctx context.Context, m model.Member) error {
			if err := a.client.Organizations.RemoveMember(ctx, m.ID); err != nil {
				return err
			}
			a.render.Notice("Removed %s", views.MemberName(m))
			return nil
		})
}
