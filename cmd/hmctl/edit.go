package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/cli"
	"github.com/homemanager/hmctl/forms"
	"github.com/homemanager/hmctl/internal/errors"
)

// checkForm validates a create/update payload and renders each field
// failure inline before returning the error.
func (a *app) checkForm(form any) error {
	err := forms.Validate(form)
	var invalid *forms.ValidationErrors
	if errors.As(err, &invalid) {
		for _, field := range invalid.Fields {
			a.render.Notice("%s %s", field.Field, field.Message)
		}
	}
	return err
}

func propertyFormFlags(name string, form *forms.PropertyForm) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&form.Name, "name", "", "property name")
	flags.StringVar(&form.Address, "address", "", "street address")
	flags.StringVar(&form.PropertyType, "type", "", "apartment, house, commercial, or mixed_use")
	flags.StringVar(&form.Description, "description", "", "free-form description")
	return flags
}

func createPropertyCommand(a *app) *cli.Command {
	var form forms.PropertyForm

	return &cli.Command{
		Name:    "create",
		Summary: "Add a property",
		Usage:   "hmctl properties create --name NAME --address ADDR --type TYPE [flags]",
		Flags:   func() *pflag.FlagSet { return propertyFormFlags("create", &form) },
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			property, err := a.client.Properties.Create(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created property %d (%s)", property.ID, property.Name)
			return nil
		},
	}
}

func updatePropertyCommand(a *app) *cli.Command {
	var form forms.PropertyForm

	return &cli.Command{
		Name:    "update",
		Summary: "Replace a property's details",
		Usage:   "hmctl properties update <id> --name NAME --address ADDR --type TYPE [flags]",
		Flags:   func() *pflag.FlagSet { return propertyFormFlags("update", &form) },
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args)
			if err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			property, err := a.client.Properties.Update(context.Background(), id, form)
			if err != nil {
				return err
			}
			a.render.Notice("Updated property %d (%s)", property.ID, property.Name)
			return nil
		},
	}
}

func addUnitCommand(a *app) *cli.Command {
	var form forms.UnitForm

	return &cli.Command{
		Name:    "add-unit",
		Summary: "Add a unit to a property",
		Usage:   "hmctl properties add-unit --property ID --unit-number NUM --rent AMOUNT [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("add-unit", pflag.ContinueOnError)
			flags.Int64Var(&form.PropertyID, "property", 0, "property id")
			flags.StringVar(&form.UnitNumber, "unit-number", "", "unit number")
			flags.StringVar(&form.UnitType, "type", "", "unit type")
			flags.StringVar(&form.Floor, "floor", "", "floor")
			flags.IntVar(&form.Bedrooms, "bedrooms", 0, "bedroom count")
			flags.Float64Var(&form.MonthlyRent, "rent", 0, "monthly rent")
			flags.Float64Var(&form.SecurityDeposit, "deposit", 0, "security deposit")
			flags.StringVar(&form.Description, "description", "", "free-form description")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			unit, err := a.client.Properties.CreateUnit(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created unit %d (%s)", unit.ID, unit.UnitNumber)
			return nil
		},
	}
}

func tenantFormFlags(name string, form *forms.TenantForm) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&form.Name, "name", "", "tenant name")
	flags.StringVar(&form.PhoneNumber, "phone", "", "phone number")
	flags.StringVar(&form.Email, "email", "", "email address")
	flags.Int64Var(&form.UnitID, "unit", 0, "unit id")
	flags.StringVar(&form.MoveInDate, "move-in", "", "move-in date (YYYY-MM-DD)")
	flags.StringVar(&form.EmergencyContact, "emergency-contact", "", "emergency contact")
	return flags
}

func createTenantCommand(a *app) *cli.Command {
	var form forms.TenantForm

	return &cli.Command{
		Name:    "create",
		Summary: "Add a tenant",
		Usage:   "hmctl tenants create --name NAME --phone NUMBER --unit ID --move-in DATE [flags]",
		Flags:   func() *pflag.FlagSet { return tenantFormFlags("create", &form) },
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			tenant, err := a.client.Tenants.Create(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created tenant %d (%s)", tenant.ID, tenant.Name)
			return nil
		},
	}
}

func updateTenantCommand(a *app) *cli.Command {
	var form forms.TenantForm

	return &cli.Command{
		Name:    "update",
		Summary: "Update a tenant's details",
		Usage:   "hmctl tenants update <id> --name NAME --phone NUMBER --unit ID --move-in DATE [flags]",
		Flags:   func() *pflag.FlagSet { return tenantFormFlags("update", &form) },
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args)
			if err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			tenant, err := a.client.Tenants.Update(context.Background(), id, form)
			if err != nil {
				return err
			}
			a.render.Notice("Updated tenant %d (%s)", tenant.ID, tenant.Name)
			return nil
		},
	}
}

func createLeaseCommand(a *app) *cli.Command {
	var form forms.LeaseForm

	return &cli.Command{
		Name:    "create",
		Summary: "Create a lease",
		Usage:   "hmctl leases create --unit ID --tenant ID --start DATE --end DATE [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.Int64Var(&form.UnitID, "unit", 0, "unit id")
			flags.Int64Var(&form.TenantID, "tenant", 0, "tenant id")
			flags.StringVar(&form.StartDate, "start", "", "start date (YYYY-MM-DD)")
			flags.StringVar(&form.EndDate, "end", "", "end date (YYYY-MM-DD)")
			flags.StringVar(&form.Terms, "terms", "", "lease terms")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			lease, err := a.client.Tenants.CreateLease(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created lease %d", lease.ID)
			return nil
		},
	}
}

func createPaymentCommand(a *app) *cli.Command {
	var form forms.PaymentForm

	return &cli.Command{
		Name:    "create",
		Summary: "Record a rent payment",
		Usage:   "hmctl payments create --unit ID --tenant ID --amount N --due DATE --status STATUS [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.Int64Var(&form.UnitID, "unit", 0, "unit id")
			flags.Int64Var(&form.TenantID, "tenant", 0, "tenant id")
			flags.Float64Var(&form.Amount, "amount", 0, "payment amount")
			flags.StringVar(&form.DueDate, "due", "", "due date (YYYY-MM-DD)")
			flags.StringVar(&form.Status, "status", "pending", "pending, paid, overdue, or partial")
			flags.StringVar(&form.PaymentMethod, "method", "", "cash, mpesa, bank, or card")
			flags.StringVar(&form.Description, "description", "", "free-form description")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			payment, err := a.client.Payments.Create(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created payment %d (%s)", payment.ID, payment.Status)
			return nil
		},
	}
}

func createTicketCommand(a *app) *cli.Command {
	var form forms.TicketForm

	return &cli.Command{
		Name:    "create",
		Summary: "Open a maintenance ticket",
		Usage:   "hmctl tickets create --property ID --unit ID --tenant ID --title TEXT [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.Int64Var(&form.PropertyID, "property", 0, "property id")
			flags.Int64Var(&form.UnitID, "unit", 0, "unit id")
			flags.Int64Var(&form.TenantID, "tenant", 0, "tenant id")
			flags.StringVar(&form.Title, "title", "", "ticket title")
			flags.StringVar(&form.Description, "description", "", "what needs fixing")
			flags.StringVar(&form.Priority, "priority", "medium", "low, medium, high, or urgent")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			ticket, err := a.client.Maintenance.CreateTicket(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created ticket %d (%s)", ticket.ID, ticket.Title)
			return nil
		},
	}
}

func createNoticeCommand(a *app) *cli.Command {
	var form forms.NoticeForm

	return &cli.Command{
		Name:    "create",
		Summary: "Post a notice",
		Usage:   "hmctl notices create --property ID --title TEXT --content TEXT --start DATE [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.Int64Var(&form.PropertyID, "property", 0, "property id")
			flags.StringVar(&form.Title, "title", "", "notice title")
			flags.StringVar(&form.Content, "content", "", "notice body")
			flags.StringVar(&form.NoticeType, "type", "general", "general, maintenance, payment, emergency, or event")
			flags.StringVar(&form.StartDate, "start", "", "start date (YYYY-MM-DD)")
			flags.StringVar(&form.EndDate, "end", "", "end date (YYYY-MM-DD)")
			flags.BoolVar(&form.IsImportant, "important", false, "pin as important")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			notice, err := a.client.Notices.Create(context.Background(), form)
			if err != nil {
				return err
			}
			a.render.Notice("Created notice %d (%s)", notice.ID, notice.Title)
			return nil
		},
	}
}

func inviteMemberCommand(a *app) *cli.Command {
	var form forms.InviteForm

	return &cli.Command{
		Name:    "invite",
		Summary: "Invite a team member",
		Usage:   "hmctl team invite --email ADDR --role ROLE",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("invite", pflag.ContinueOnError)
			flags.StringVar(&form.Email, "email", "", "invitee's email address")
			flags.StringVar(&form.Role, "role", "", "owner, manager, caretaker, or viewer")
			return flags
		},
		Run: func(args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.checkForm(&form); err != nil {
				return err
			}
			member, err := a.client.Organizations.Invite(context.Background(), api.InviteRequest{
				Email: form.Email,
				Role:  form.Role,
			})
			if err != nil {
				return err
			}
			a.render.Notice("Invited %s as %s", form.Email, member.Role)
			return nil
		},
	}
}
