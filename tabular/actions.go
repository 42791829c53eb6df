package tabular

import "github.com/homemanager/hmctl/internal/errors"

// ActionKind is the closed set of row-level contextual actions. Pages
// declare which kinds they offer; the dispatcher routes an invocation
// back to the page's single handler with the full row record.
type ActionKind int

const (
	ActionView ActionKind = iota
	ActionEdit
	ActionDelete
	ActionEmail
	ActionSMS
	ActionCall
	ActionMarkPaid
	ActionAssign
	ActionResolve
	ActionArchive
)

func (k ActionKind) String() string {
	switch k {
	case ActionView:
		return "view"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	case ActionEmail:
		return "email"
	case ActionSMS:
		return "sms"
	case ActionCall:
		return "call"
	case ActionMarkPaid:
		return "mark-paid"
	case ActionAssign:
		return "assign"
	case ActionResolve:
		return "resolve"
	case ActionArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Action is one entry in a page's row menu.
type Action struct {
	Kind  ActionKind
	Label string
	Icon  string
	Color string
}

// ActionSet couples a page's declared actions with its handler.
type ActionSet[T any] struct {
	Items   []Action
	Handler func(kind ActionKind, row T) error
}

// Invoke dispatches one action to the handler. Unknown kinds (not in
// Items) are rejected so a page only ever handles actions it declared.
func (s ActionSet[T]) Invoke(kind ActionKind, row T) error {
	for _, item := range s.Items {
		if item.Kind == kind {
			if s.Handler == nil {
				return nil
			}
			return s.Handler(kind, row)
		}
	}
	return errors.Wrapf(errors.ErrUnsupported, "[ActionSet.Invoke] action %q not declared", kind)
}
