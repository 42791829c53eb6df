package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/tabular"
)

const NoticesTitle = "Notice Board"

// LoadNoticeRows fetches notices and their properties.
func LoadNoticeRows(ctx context.Context, client *api.Client) ([]NoticeRow, error) {
	notices, err := client.Notices.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := client.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildNoticeRows(notices, properties), nil
}

// NewNoticesView configures the notice board list page.
func NewNoticesView(table TableOptions) *tabular.View[NoticeRow] {
	columns := []tabular.Column[NoticeRow]{
		{ID: "title", Label: "Title", Value: func(r NoticeRow) any { return r.Notice.Title },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_name", Label: "Property", Value: func(r NoticeRow) any {
			if r.Property == nil {
				return nil
			}
			return r.Property.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "notice_type", Label: "Type", Value: func(r NoticeRow) any { return r.Notice.NoticeType },
			Sortable: true, Exportable: true},
		{ID: "start_date", Label: "Starts", Value: func(r NoticeRow) any { return r.Notice.StartDate },
			Sortable: true, Exportable: true},
		{ID: "end_date", Label: "Ends", Value: func(r NoticeRow) any { return r.Notice.EndDate },
			Sortable: true, Exportable: true},
		{ID: "is_important", Label: "Important", Value: func(r NoticeRow) any { return r.Notice.IsImportant },
			Sortable: true, Exportable: true},
	}

	view := tabular.New(columns, func(r NoticeRow) int64 { return r.Notice.ID }, tabular.Options{
		Searchable:           true,
		Filterable:           true,
		Exportable:           true,
		DefaultSortColumn:    "start_date",
		DefaultSortDirection: tabular.Descending,
		PageSize:             table.PageSize,
		PageSizeOptions:      table.PageSizeOptions,
		MinSearchLength:      table.MinSearchLength,
	})
	view.RegisterFilterField("archived", func(r NoticeRow) any { return r.Notice.IsArchived })
	return view
}

// NoticeActions is the notice row menu.
func NoticeActions(handler func(tabular.ActionKind, NoticeRow) error) tabular.ActionSet[NoticeRow] {
	return tabular.ActionSet[NoticeRow]{
		Items: []tabular.Action{
			{Kind: tabular.ActionView, Label: "View", Icon: "eye"},
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionArchive, Label: "Archive", Icon: "box"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
