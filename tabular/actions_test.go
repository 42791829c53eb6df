package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/tabular"
)

func TestActionSetDispatchesDeclaredKinds(t *testing.T) {
	var gotKind tabular.ActionKind
	var gotRow person

	set := tabular.ActionSet[person]{
		Items: []tabular.Action{
			{Kind: tabular.ActionEdit, Label: "Edit"},
			{Kind: tabular.ActionDelete, Label: "Delete", Color: "red"},
		},
		Handler: func(kind tabular.ActionKind, row person) error {
			gotKind = kind
			gotRow = row
			return nil
		},
	}

	row := person{ID: 9, Name: "Alice Smith"}
	require.NoError(t, set.Invoke(tabular.ActionDelete, row))
	require.Equal(t, tabular.ActionDelete, gotKind)
	require.Equal(t, row, gotRow)
}

func TestActionSetRejectsUndeclaredKinds(t *testing.T) {
	set := tabular.ActionSet[person]{
		Items: []tabular.Action{{Kind: tabular.ActionView, Label: "View"}},
		Handler: func(tabular.ActionKind, person) error {
			t.Fatal("handler should not run for an undeclared action")
			return nil
		},
	}

	err := set.Invoke(tabular.ActionDelete, person{})
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestActionKindString(t *testing.T) {
	require.Equal(t, "mark-paid", tabular.ActionMarkPaid.String())
	require.Equal(t, "view", tabular.ActionView.String())
	require.Equal(t, "unknown", tabular.ActionKind(99).String())
}
