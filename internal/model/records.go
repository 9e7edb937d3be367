// Package model defines the record types exchanged with the backend
// and the derived series consumed by the dashboard views.
package model

// Client is an investment-office client as served by the backend.
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Asset is a tradable instrument referenced by allocations.
// Immutable once created on the backend side.
type Asset struct {
	ID       int64  `json:"id"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// Allocation records a buy of an asset for a client. Quantity and
// BuyPrice are decimal strings exactly as the backend serializes them;
// invested value (quantity × buy price) is always computed on read.
type Allocation struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	AssetID  int64  `json:"asset_id"`
	Quantity string `json:"quantity"`
	BuyPrice string `json:"buy_price"`
	BuyDate  string `json:"buy_date"`
}

// MovementType distinguishes cash inflows from outflows.
type MovementType string

const (
	MovementDeposit    MovementType = "deposit"
	MovementWithdrawal MovementType = "withdrawal"
)

// Movement is a cash deposit or withdrawal for a client. Amount is a
// decimal string; deposits count as positive flow, withdrawals negative.
type Movement struct {
	ID       int64        `json:"id"`
	ClientID int64        `json:"client_id"`
	Type     MovementType `json:"type"`
	Amount   string       `json:"amount"`
	Date     string       `json:"date"`
	Note     string       `json:"note,omitempty"`
}

// PaginationMeta describes one page of a paginated listing.
// Pages == 0 signals an empty result set, not page 1 of nothing.
type PaginationMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Pages    int `json:"pages"`
}

// Paginated wraps a listing page in the backend's envelope.
type Paginated[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
