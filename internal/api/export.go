package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

// ExportKind names the backend CSV export streams.
type ExportKind string

const (
	ExportClients     ExportKind = "clients"
	ExportAllocations ExportKind = "allocations"
	ExportMovements   ExportKind = "movements"
)

// DownloadExport fetches one of the backend's CSV exports and writes it
// to dest. The backend owns the file format; this is plain plumbing.
func (c *Client) DownloadExport(ctx context.Context, kind ExportKind, dest string) error {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/export/%s", kind), nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("api: writing %s: %w", dest, err)
	}
	return nil
}
