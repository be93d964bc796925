package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportFileName names an export made at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("orders_%s.json", t.Format(time.DateOnly))
}

// Export writes the full listing, never a filtered view, as an indented JSON
// array and returns the suggested file name.
func (u *AdminUseCase) Export(ctx context.Context, w io.Writer) (string, error) {
	orders, err := u.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orders); err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return ExportFileName(u.now()), nil
}
