package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/tabular"
)

const TeamTitle = "Team Members"

// LoadMembers fetches the organization's member list.
func LoadMembers(ctx context.Context, client *api.Client) ([]model.Member, error) {
	return client.Organizations.Members(ctx)
}

// MemberName prefers the real name and falls back to the username.
func MemberName(m model.Member) string {
	if m.FirstName == "" && m.LastName == "" {
		return m.Username
	}
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// NewTeamView configures the team member list page.
func NewTeamView(table TableOptions) *tabular.View[model.Member] {
	columns := []tabular.Column[model.Member]{
		{ID: "name", Label: "Name", Value: func(m model.Member) any { return MemberName(m) },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "email", Label: "Email", Value: func(m model.Member) any { return m.Email },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "role", Label: "Role", Value: func(m model.Member) any { return m.Role },
			Sortable: true, Exportable: true},
		{ID: "is_active", Label: "Active", Value: func(m model.Member) any { return m.IsActive },
			Sortable: true, Exportable: true},
		{ID: "joined_at", Label: "Joined", Value: func(m model.Member) any { return m.JoinedAt },
			Sortable: true, Exportable: true},
	}

	return tabular.New(columns, func(m model.Member) int64 { return m.ID }, tabular.Options{
		Searchable:           true,
		Filterable:           true,
		Exportable:           true,
		DefaultSortColumn:    "name",
		DefaultSortDirection: tabular.Ascending,
		PageSize:             table.PageSize,
		PageSizeOptions:      table.PageSizeOptions,
		MinSearchLength:      table.MinSearchLength,
	})
}

// TeamActions is the member row menu.
func TeamActions(handler func(tabular.ActionKind, model.Member) error) tabular.ActionSet[model.Member] {
	return tabular.ActionSet[model.Member]{
		Items: []tabular.Action{
			{Kind: tabular.ActionEdit, Label: "Change Role", Icon: "pencil"},
			{Kind: tabular.ActionEmail, Label: "Email", Icon: "mail"},
			{Kind: tabular.ActionDelete, Label: "Remove", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
