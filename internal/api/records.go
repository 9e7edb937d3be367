package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ankadash/internal/model"
)

// FetchClients retrieves every client, walking all pages.
func (c *Client) FetchClients(ctx context.Context) ([]model.Client, error) {
	return fetchAllPages[model.Client](ctx, c, "/clients/")
}

// FetchAssets retrieves every asset.
func (c *Client) FetchAssets(ctx context.Context) ([]model.Asset, error) {
	return fetchAllPages[model.Asset](ctx, c, "/assets/")
}

// FetchAllocations retrieves every allocation.
func (c *Client) FetchAllocations(ctx context.Context) ([]model.Allocation, error) {
	return fetchAllPages[model.Allocation](ctx, c, "/allocations/")
}

// FetchMovements retrieves every movement.
func (c *Client) FetchMovements(ctx context.Context) ([]model.Movement, error) {
	return fetchAllPages[model.Movement](ctx, c, "/movements/")
}

// ClientInput is the create/update payload for a client.
type ClientInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// CreateClient registers a new client.
func (c *Client) CreateClient(ctx context.Context, in ClientInput) (model.Client, error) {
	return postJSON[model.Client](ctx, c, "/clients/", in)
}

// UpdateClient replaces an existing client's fields.
func (c *Client) UpdateClient(ctx context.Context, id int64, in ClientInput) (model.Client, error) {
	return putJSON[model.Client](ctx, c, fmt.Sprintf("/clients/%d", id), in)
}

// DeleteClient removes a client.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
	return err
}

// AssetInput is the create payload for an asset.
type AssetInput struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// CreateAsset registers a new asset.
func (c *Client) CreateAsset(ctx context.Context, in AssetInput) (model.Asset, error) {
	return postJSON[model.Asset](ctx, c, "/assets/", in)
}

// AllocationInput is the create payload for an allocation. Quantity
// and BuyPrice are decimal strings, matching the backend contract.
type AllocationInput struct {
	ClientID int64  `json:"client_id"`
	AssetID  int64  `json:"asset_id"`
	Quantity string `json:"quantity"`
	BuyPrice string `json:"buy_price"`
	BuyDate  string `json:"buy_date"`
}

// CreateAllocation records a buy for a client.
func (c *Client) CreateAllocation(ctx context.Context, in AllocationInput) (model.Allocation, error) {
	return postJSON[model.Allocation](ctx, c, "/allocations/", in)
}

// DeleteAllocation removes an allocation.
func (c *Client) DeleteAllocation(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/allocations/%d", id), nil)
	return err
}

// MovementInput is the create payload for a cash movement.
type MovementInput struct {
	ClientID int64              `json:"client_id"`
	Type     model.MovementType `json:"type"`
	Amount   string             `json:"amount"`
	Date     string             `json:"date"`
	Note     string             `json:"note,omitempty"`
}

// CreateMovement records a deposit or withdrawal.
func (c *Client) CreateMovement(ctx context.Context, in MovementInput) (model.Movement, error) {
	return postJSON[model.Movement](ctx, c, "/movements/", in)
}

// DeleteMovement removes a movement.
func (c *Client) DeleteMovement(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movements/%d", id), nil)
	return err
}

func postJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return writeJSON[T](ctx, c, http.MethodPost, path, payload)
}

func putJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return writeJSON[T](ctx, c, http.MethodPut, path, payload)
}

func writeJSON[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var out T
	data, err := c.do(ctx, method, path, payload)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("api: parsing %s response: %w", path, err)
	}
	return out, nil
}
