package sendgrid

import (
	"context"

	"github.com/s0up4200/clientele/rest"
)

// ScheduledSend is a batch whose scheduled messages are paused or
// cancelled.
type ScheduledSend struct {
	BatchID string              `json:"batch_id"`
	Status  ScheduledSendStatus `json:"status"`
}

type batchID struct {
	BatchID string `json:"batch_id"`
}

// CreateBatchID creates a batch ID that groups scheduled messages so they
// can be paused or cancelled together.
func (c *Client) CreateBatchID(ctx context.Context) (string, error) {
	var out batchID
	if err := c.rest.Post(ctx, "/v3/mail/batch", nil, nil, &out); err != nil {
		return "", err
	}
	return out.BatchID, nil
}

// ValidateBatchID checks that id exists. An unknown ID returns an
// *rest.APIError matching rest.ErrNotFound or a 400.
func (c *Client) ValidateBatchID(ctx context.Context, id string) error {
	path, err := rest.Path("/v3/mail/batch/{batch_id}", id)
	if err != nil {
		return err
	}
	return c.rest.Get(ctx, path, nil, nil)
}

// ListScheduledSends lists every paused or cancelled batch.
func (c *Client) ListScheduledSends(ctx context.Context) ([]ScheduledSend, error) {
	var out []ScheduledSend
	if err := c.rest.Get(ctx, "/v3/user/scheduled_sends", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetScheduledSend returns the status of one batch. The API answers with
// a list that is empty when the batch was never paused or cancelled.
func (c *Client) GetScheduledSend(ctx context.Context, id string) ([]ScheduledSend, error) {
	path, err := rest.Path("/v3/user/scheduled_sends/{batch_id}", id)
	if err != nil {
		return nil, err
	}

	var out []ScheduledSend
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateScheduledSend pauses or cancels every message of a batch.
func (c *Client) CreateScheduledSend(ctx context.Context, id string, status ScheduledSendStatus) (*ScheduledSend, error) {
	var out ScheduledSend
	if err := c.rest.Post(ctx, "/v3/user/scheduled_sends", nil, ScheduledSend{BatchID: id, Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateScheduledSend switches a batch between paused and cancelled.
func (c *Client) UpdateScheduledSend(ctx context.Context, id string, status ScheduledSendStatus) error {
	path, err := rest.Path("/v3/user/scheduled_sends/{batch_id}", id)
	if err != nil {
		return err
	}

	body := struct {
		Status ScheduledSendStatus `json:"status"`
	}{status}
	return c.rest.Patch(ctx, path, nil, body, nil)
}

// DeleteScheduledSend resumes a paused or cancelled batch.
func (c *Client) DeleteScheduledSend(ctx context.Context, id string) error {
	path, err := rest.Path("/v3/user/scheduled_sends/{batch_id}", id)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}
