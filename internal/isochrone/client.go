package isochrone

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/olympics-access-go/internal/models"
)

// Client issues accessibility queries against the remote Fused compute
// service. One blocking request per call; no retries, no caching.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. A hung remote call is
// cut off by the client timeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch runs one accessibility query and returns the parsed hex-cell rows.
// Venue codes are encoded as indexed keys (stadium_codes[0], ...) to match
// the service's flat query-string contract.
func (c *Client) Fetch(ctx context.Context, codes []string, travelTime int, travelMode string, resolution int) ([]models.AccessibilityRow, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid isochrone endpoint: %w", err)
	}

	q := u.Query()
	q.Set("dtype_out_raster", "png")
	q.Set("dtype_out_vector", "csv")
	q.Set("travel_time", strconv.Itoa(travelTime))
	q.Set("travel_mode", travelMode)
	q.Set("resolution", strconv.Itoa(resolution))
	for i, code := range codes {
		q.Set(fmt.Sprintf("stadium_codes[%d]", i), code)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create isochrone request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("isochrone service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read isochrone response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteServiceError{Status: resp.StatusCode, Body: string(body)}
	}

	content := strings.TrimSpace(string(body))
	if content == "" {
		return nil, ErrEmptyResponse
	}

	return parseRows(content)
}

// parseRows decodes the CSV body. The header must carry cell_id and cnt;
// stadium_name is passed through when present.
func parseRows(content string) ([]models.AccessibilityRow, error) {
	r := csv.NewReader(strings.NewReader(content))
	records, err := r.ReadAll()
	if err != nil {
		return nil, &MalformedResponseError{Body: bodySnippet(content), Err: err}
	}
	if len(records) < 2 {
		return nil, &MalformedResponseError{Body: bodySnippet(content)}
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	cellCol, okCell := col["cell_id"]
	cntCol, okCnt := col["cnt"]
	if !okCell || !okCnt {
		return nil, &MalformedResponseError{Body: bodySnippet(content)}
	}
	nameCol, hasName := col["stadium_name"]

	rows := make([]models.AccessibilityRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		count, err := strconv.ParseFloat(rec[cntCol], 64)
		if err != nil {
			return nil, &MalformedResponseError{Body: bodySnippet(content), Err: err}
		}
		row := models.AccessibilityRow{
			CellID: rec[cellCol],
			Count:  count,
		}
		if hasName {
			row.StadiumName = rec[nameCol]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
