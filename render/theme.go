// Package render draws views to a terminal: tabulated list pages,
// label/value detail blocks, and the color theme applied to statuses
// and priorities.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/homemanager/hmctl/model"
)

// Theme is the color palette for terminal output. Colors are lipgloss
// ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	HeaderForeground lipgloss.Color
	TitleForeground  lipgloss.Color

	// Payment statuses.
	PaymentPending lipgloss.Color
	PaymentPaid    lipgloss.Color
	PaymentOverdue lipgloss.Color
	PaymentPartial lipgloss.Color

	// Ticket statuses.
	TicketNew        lipgloss.Color
	TicketAssigned   lipgloss.Color
	TicketInProgress lipgloss.Color
	TicketOnHold     lipgloss.Color
	TicketResolved   lipgloss.Color
	TicketClosed     lipgloss.Color

	// Ticket priorities.
	PriorityUrgent lipgloss.Color
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
}

// PaymentStatusColor returns the color for a rent payment status.
// Unknown values render as FaintText.
func (theme Theme) PaymentStatusColor(status string) lipgloss.Color {
	switch status {
	case model.PaymentStatusPending:
		return theme.PaymentPending
	case model.PaymentStatusPaid:
		return theme.PaymentPaid
	case model.PaymentStatusOverdue:
		return theme.PaymentOverdue
	case model.PaymentStatusPartial:
		return theme.PaymentPartial
	default:
		return theme.FaintText
	}
}

// TicketStatusColor returns the color for a ticket status.
func (theme Theme) TicketStatusColor(status string) lipgloss.Color {
	switch status {
	case model.TicketStatusNew:
		return theme.TicketNew
	case model.TicketStatusAssigned:
		return theme.TicketAssigned
	case model.TicketStatusInProgress:
		return theme.TicketInProgress
	case model.TicketStatusOnHold:
		return theme.TicketOnHold
	case model.TicketStatusResolved:
		return theme.TicketResolved
	case model.TicketStatusClosed:
		return theme.TicketClosed
	default:
		return theme.FaintText
	}
}

// PriorityColor returns the color for a ticket priority.
func (theme Theme) PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case model.TicketPriorityUrgent:
		return theme.PriorityUrgent
	case model.TicketPriorityHigh:
		return theme.PriorityHigh
	case model.TicketPriorityMedium:
		return theme.PriorityMedium
	case model.TicketPriorityLow:
		return theme.PriorityLow
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	TitleForeground:  lipgloss.Color("75"),

	PaymentPending: lipgloss.Color("220"), // amber
	PaymentPaid:    lipgloss.Color("114"), // green
	PaymentOverdue: lipgloss.Color("196"), // red
	PaymentPartial: lipgloss.Color("208"), // orange

	TicketNew:        lipgloss.Color("114"),
	TicketAssigned:   lipgloss.Color("141"),
	TicketInProgress: lipgloss.Color("220"),
	TicketOnHold:     lipgloss.Color("208"),
	TicketResolved:   lipgloss.Color("75"),
	TicketClosed:     lipgloss.Color("245"),

	PriorityUrgent: lipgloss.Color("196"),
	PriorityHigh:   lipgloss.Color("208"),
	PriorityMedium: lipgloss.Color("75"),
	PriorityLow:    lipgloss.Color("245"),
}
