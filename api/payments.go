package api

import (
	"context"
	"net/url"

	"github.com/homemanager/hmctl/model"
)

const rentPaymentsPath = "/api/payments/rent/"

// PaymentsAPI wraps the rent payment endpoints.
type PaymentsAPI struct {
	client *Client
}

func (p *PaymentsAPI) List(ctx context.Context) ([]model.RentPayment, error) {
	var payments []model.RentPayment
	if err := p.client.get(ctx, rentPaymentsPath, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByStatus lists payments filtered server-side by status.
func (p *PaymentsAPI) ListByStatus(ctx context.Context, status string) ([]model.RentPayment, error) {
	query := url.Values{"status": []string{status}}
	var payments []model.RentPayment
	if err := p.client.get(ctx, rentPaymentsPath, query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (p *PaymentsAPI) Get(ctx context.Context, id int64) (*model.RentPayment, error) {
	var payment model.RentPayment
	if err := p.client.get(ctx, idPath(rentPaymentsPath, id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *PaymentsAPI) Create(ctx context.Context, body any) (*model.RentPayment, error) {
	var payment model.RentPayment
	if err := p.client.post(ctx, rentPaymentsPath, body, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *PaymentsAPI) Update(ctx context.Context, id int64, body any) (*model.RentPayment, error) {
	var payment model.RentPayment
	if err := p.client.put(ctx, idPath(rentPaymentsPath, id), body, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkPaid flips a payment's status to paid without touching its other
// fields.
func (p *PaymentsAPI) MarkPaid(ctx context.Context, id int64) (*model.RentPayment, error) {
	var payment model.RentPayment
	body := map[string]string{"status": model.PaymentStatusPaid}
	if err := p.client.patch(ctx, idPath(rentPaymentsPath, id), body, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *PaymentsAPI) Delete(ctx context.Context, id int64) error {
	return p.client.delete(ctx, idPath(rentPaymentsPath, id))
}
