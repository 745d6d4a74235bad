// Package sheets backs the key-value adapter with a Google Sheets range:
// column A holds the slot key, column B the serialized value. Useful when the
// ledger should be inspectable from a spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewFromEnv creates a Sheets-backed adapter using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_SHEET_NAME (default "Slots"); credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS (falls back to ADC).
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Slots"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var opts []goption.ClientOption
	switch {
	case serviceAccountJSON != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(serviceAccountJSON)))
	case serviceAccountFile != "":
		credentialsJSON, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		opts = append(opts, goption.WithCredentialsJSON(credentialsJSON))
	}
	opts = append(opts, goption.WithScopes(gsheet.SpreadsheetsScope))

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	row, value, err := c.findRow(ctx, key)
	if err != nil {
		return "", false, err
	}
	if row == 0 {
		return "", false, nil
	}
	return value, true, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	row, _, err := c.findRow(ctx, key)
	if err != nil {
		return err
	}

	vr := &gsheet.ValueRange{Values: [][]interface{}{{key, value}}}

	if row == 0 {
		_, err = c.svc.Spreadsheets.Values.
			Append(c.spreadsheetID, c.keyRange(), vr).
			ValueInputOption("RAW").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("append slot %q: %w", key, err)
		}
		return nil
	}

	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, fmt.Sprintf("%s!A%d:B%d", c.sheetName, row, row), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update slot %q: %w", key, err)
	}
	return nil
}

// findRow returns the 1-based row holding key, or 0 when absent.
func (c *Client) findRow(ctx context.Context, key string) (int, string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, c.keyRange()).
		Context(ctx).Do()
	if err != nil {
		return 0, "", fmt.Errorf("read slot range: %w", err)
	}

	for i, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if fmt.Sprint(row[0]) != key {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = fmt.Sprint(row[1])
		}
		return i + 1, value, nil
	}
	return 0, "", nil
}

func (c *Client) keyRange() string {
	return fmt.Sprintf("%s!A:B", c.sheetName)
}
