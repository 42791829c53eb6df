package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/homemanager/hmctl/model"
)

const (
	ticketsPath   = "/api/maintenance/tickets/"
	commentsPath  = "/api/maintenance/comments/"
	providersPath = "/api/maintenance/service-providers/"
)

// MaintenanceAPI wraps the maintenance ticket endpoints.
type MaintenanceAPI struct {
	client *Client
}

func (m *MaintenanceAPI) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := m.client.get(ctx, ticketsPath, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListTicketsByStatus lists tickets in any of the given statuses.
func (m *MaintenanceAPI) ListTicketsByStatus(ctx context.Context, statuses ...string) ([]model.Ticket, error) {
	query := url.Values{"status": statuses}
	var tickets []model.Ticket
	if err := m.client.get(ctx, ticketsPath, query, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (m *MaintenanceAPI) GetTicket(ctx context.Context, id int64) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := m.client.get(ctx, idPath(ticketsPath, id), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (m *MaintenanceAPI) CreateTicket(ctx context.Context, body any) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := m.client.post(ctx, ticketsPath, body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (m *MaintenanceAPI) UpdateTicket(ctx context.Context, id int64, body any) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := m.client.put(ctx, idPath(ticketsPath, id), body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (m *MaintenanceAPI) DeleteTicket(ctx context.Context, id int64) error {
	return m.client.delete(ctx, idPath(ticketsPath, id))
}

// Comments lists a ticket's comment thread.
func (m *MaintenanceAPI) Comments(ctx context.Context, ticketID int64) ([]model.TicketComment, error) {
	query := url.Values{"ticket": []string{strconv.FormatInt(ticketID, 10)}}
	var comments []model.TicketComment
	if err := m.client.get(ctx, commentsPath, query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (m *MaintenanceAPI) AddComment(ctx context.Context, body any) (*model.TicketComment, error) {
	var comment model.TicketComment
	if err := m.client.post(ctx, commentsPath, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ServiceProviders lists the contractors tickets can be assigned to.
func (m *MaintenanceAPI) ServiceProviders(ctx context.Context) ([]model.ServiceProvider, error) {
	var providers []model.ServiceProvider
	if err := m.client.get(ctx, providersPath, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}
