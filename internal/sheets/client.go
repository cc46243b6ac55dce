package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	DefaultTimeout = 30 * time.Second

	valueInputRaw = "RAW"
)

// Client talks to the Google Sheets v4 values API with a static API key.
type Client struct {
	sheetID string
	svc     *gsheets.Service
	timeout time.Duration
	logger  *slog.Logger

	endpoint string
}

type ClientOption func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.endpoint = strings.TrimRight(u, "/") + "/"
		}
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewClient(ctx context.Context, sheetID, apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		sheetID: sheetID,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	svcOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if c.endpoint != "" {
		svcOpts = append(svcOpts, option.WithEndpoint(c.endpoint))
	}
	svc, err := gsheets.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheets service: %v", ErrConnection, err)
	}
	c.svc = svc
	return c, nil
}

func (c *Client) Probe(ctx context.Context) error {
	return c.do(ctx, "probe", func(ctx context.Context) error {
		_, err := c.svc.Spreadsheets.Get(c.sheetID).Fields("spreadsheetId").Context(ctx).Do()
		return err
	})
}

func (c *Client) Read(ctx context.Context, rng string) ([][]string, error) {
	var vr *gsheets.ValueRange
	err := c.do(ctx, "read", func(ctx context.Context) error {
		var err error
		vr, err = c.svc.Spreadsheets.Values.Get(c.sheetID, rng).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	rows := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *Client) Write(ctx context.Context, rng string, rows [][]string) error {
	vr := &gsheets.ValueRange{Range: rng, Values: toValues(rows)}
	err := c.do(ctx, "write", func(ctx context.Context) error {
		_, err := c.svc.Spreadsheets.Values.Update(c.sheetID, rng, vr).ValueInputOption(valueInputRaw).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	return nil
}

func (c *Client) Append(ctx context.Context, rng string, row []string) error {
	vr := &gsheets.ValueRange{Values: toValues([][]string{row})}
	err := c.do(ctx, "append", func(ctx context.Context) error {
		_, err := c.svc.Spreadsheets.Values.Append(c.sheetID, rng, vr).ValueInputOption(valueInputRaw).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("append %s: %w", rng, err)
	}
	return nil
}

// do runs one API call under the client timeout and classifies its error.
func (c *Client) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	c.logger.Debug("sheets request",
		slog.String("op", op),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("ok", err == nil),
	)
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return StatusError{Code: gerr.Code, Message: gerr.Message}
	}
	return classifyTransport(err)
}

func cellString(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case bool:
		if tv {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	default:
		return fmt.Sprint(tv)
	}
}

func toValues(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}
