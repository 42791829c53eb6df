package api

import (
	"context"

	"github.com/homemanager/hmctl/model"
)

const noticesPath = "/api/notices/notices/"

// NoticesAPI wraps the notice-board endpoints.
type NoticesAPI struct {
	client *Client
}

func (n *NoticesAPI) List(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := n.client.get(ctx, noticesPath, nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (n *NoticesAPI) Get(ctx context.Context, id int64) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.get(ctx, idPath(noticesPath, id), nil, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Create(ctx context.Context, body any) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.post(ctx, noticesPath, body, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Update(ctx context.Context, id int64, body any) (*model.Notice, error) {
	var notice model.Notice
	if err := n.client.put(ctx, idPath(noticesPath, id), body, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Archive marks a notice archived without deleting it.
func (n *NoticesAPI) Archive(ctx context.Context, id int64) (*model.Notice, error) {
	var notice model.Notice
	body := map[string]bool{"is_archived": true}
	if err := n.client.patch(ctx, idPath(noticesPath, id), body, &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (n *NoticesAPI) Delete(ctx context.Context, id int64) error {
	return n.client.delete(ctx, idPath(noticesPath, id))
}
