package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/homemanager/hmctl/export"
	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/tabular"
)

// listFlags holds the flags shared by every list command.
type listFlags struct {
	search   string
	filters  []string
	sort     string
	desc     bool
	page     int
	pageSize int
	export   bool
}

func (f *listFlags) flagSet(name string, defaultPageSize int) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVarP(&f.search, "search", "s", "", "search query")
	flags.StringArrayVarP(&f.filters, "filter", "f", nil, "column filter, key=value or key=a,b for multi-select")
	flags.StringVar(&f.sort, "sort", "", "sort column")
	flags.BoolVar(&f.desc, "desc", false, "sort descending")
	flags.IntVar(&f.page, "page", 1, "page number")
	flags.IntVar(&f.pageSize, "page-size", defaultPageSize, "rows per page")
	flags.BoolVar(&f.export, "export", false, "write the full result set to a CSV file")
	return flags
}

// apply pushes the parsed flags into the view. Filters are key=value
// pairs; a comma in the value makes it a multi-select filter.
func (f *listFlags) apply(view interface {
	SetQuery(string)
	SetFilter(string, tabular.Filter)
	SortBy(string, tabular.Direction)
	SetPageSize(int)
	SetPage(int)
}) error {
	view.SetQuery(f.search)

	for _, raw := range f.filters {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return errors.Wrapf(errors.ErrValidation, "[listFlags.apply] filter %q is not key=value", raw)
		}
		if strings.Contains(value, ",") {
			view.SetFilter(key, tabular.OneOf(strings.Split(value, ",")...))
		} else {
			view.SetFilter(key, tabular.Match(value))
		}
	}

	if f.sort != "" {
		direction := tabular.Ascending
		if f.desc {
			direction = tabular.Descending
		}
		view.SortBy(f.sort, direction)
	}

	view.SetPageSize(f.pageSize)
	view.SetPage(f.page - 1)
	return nil
}

// showList renders or exports a configured view.
func showList[T any](a *app, view *tabular.View[T], title string, rows []T, flags *listFlags) error {
	view.SetRows(rows)
	if err := flags.apply(view); err != nil {
		return err
	}

	if flags.export {
		headers, data := view.ExportData()
		path, err := export.WriteFile(a.config.GetExportDir(), title, headers, data)
		if err != nil {
			return err
		}
		a.render.Notice("Exported %d rows to %s", len(data), path)
		return nil
	}

	a.render.Title(title)
	headers, data := view.PageData()
	a.render.Table(headers, data, view.EmptyMessage())
	a.render.Footer(view.CurrentPage(), view.PageSize(), view.Total())
	return nil
}
