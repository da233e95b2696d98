package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"watchface-monitor/internal/models"

	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the catalog listing queried for every device.
	DefaultEndpoint = "https://www.mibandtool.club:9073/watchface/listbytag/0/1/20/9999"
	// DefaultTimeout bounds a single catalog request.
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "Mozilla/5.0"
	deviceHeader     = "type"
)

// FetchError reports a catalog request that produced no usable body.
type FetchError struct {
	DeviceID   string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.DeviceID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.DeviceID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client queries the catalog API. It implements pipeline.Stage, turning a
// list of device identifiers into a models.Report.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the catalog URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client with the default endpoint and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		endpoint:   DefaultEndpoint,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the catalog listing for one device.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - deviceID: Identifier sent in the device header.
//
// Returns:
//   - The decoded listing, unmodified.
//   - A *FetchError on transport failure, non-2xx status or a malformed body.
func (c *Client) Fetch(ctx context.Context, deviceID string) (*models.CatalogResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{DeviceID: deviceID, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set(deviceHeader, deviceID)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{DeviceID: deviceID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{DeviceID: deviceID, StatusCode: resp.StatusCode, Err: fmt.Errorf("bad status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{DeviceID: deviceID, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	var listing models.CatalogResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &FetchError{DeviceID: deviceID, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}
	return &listing, nil
}

// FetchDevice fetches one device and applies the acceptance policy: only a
// listing with the success code contributes items. Failures are logged and
// reported as an empty result, never returned.
func (c *Client) FetchDevice(ctx context.Context, deviceID string, logger *zap.Logger) models.DeviceResult {
	start := time.Now()
	listing, err := c.Fetch(ctx, deviceID)
	if err != nil {
		logger.Warn("catalog request failed",
			zap.String("device", deviceID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return models.DeviceResult{DeviceID: deviceID, Items: []models.Item{}, Err: err}
	}

	if !listing.Accepted() {
		fields := []zap.Field{zap.String("device", deviceID)}
		if listing.Code != nil {
			fields = append(fields, zap.Int("code", *listing.Code))
		}
		logger.Debug("catalog listing not accepted", fields...)
		return models.DeviceResult{DeviceID: deviceID, Items: []models.Item{}}
	}

	items := listing.Data
	if items == nil {
		items = []models.Item{}
	}
	logger.Debug("fetched catalog listing",
		zap.String("device", deviceID),
		zap.Int("items", len(items)),
		zap.Duration("duration", time.Since(start)))
	return models.DeviceResult{DeviceID: deviceID, Items: items}
}

// Execute fetches every device in order, one at a time.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - input: Device identifiers as []string.
//   - logger: Logger for progress and failures.
//
// Returns:
//   - A models.Report with one result per identifier, in input order.
//   - An error if the input has the wrong type or the context is canceled.
func (c *Client) Execute(ctx context.Context, input interface{}, logger *zap.Logger) (interface{}, error) {
	ids, ok := input.([]string)
	if !ok {
		return nil, fmt.Errorf("invalid input type %T, expected []string", input)
	}

	report := models.Report{Results: make([]models.DeviceResult, 0, len(ids))}
	failed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			logger.Warn("fetching interrupted", zap.Error(err))
			return nil, err
		}
		res := c.FetchDevice(ctx, id, logger)
		if res.Err != nil {
			failed++
		}
		report.Results = append(report.Results, res)
	}

	logger.Info("fetch statistics",
		zap.Int("devices", len(ids)),
		zap.Int("failed", failed))
	return report, nil
}
