package sheetlog

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/procomhq/attendance-portal/internal/config"
)

// NewSheetsService builds the process-wide Google Sheets client from
// configuration. Credentials come from an inline JSON blob or a key file
// path; both missing is startup-fatal for the caller.
func NewSheetsService(ctx context.Context, cfg *config.Config) (*sheets.Service, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, errors.New("no Google credentials configured")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return srv, nil
}
