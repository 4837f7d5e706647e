package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/common"
)

const (
	healthTimeout = 2 * time.Second
	createTimeout = 5 * time.Second
)

// HTTPClient implements Client over the backend's JSON HTTP surface.
type HTTPClient struct {
	baseURL      string
	clientID     string
	healthClient *http.Client
	createClient *http.Client
}

// NewHTTPClient returns a client for the given base URL. clientID is the
// install id attached to every request for server-side log correlation.
func NewHTTPClient(baseURL, clientID string) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		healthClient: &http.Client{Timeout: healthTimeout},
		createClient: &http.Client{Timeout: createTimeout},
	}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.setHeaders(req)

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %s", ErrUnavailable, resp.Status)
	}
	return nil
}

type createUserResponse struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, p models.UserPayload) (int64, error) {
	var out createUserResponse
	if err := c.post(ctx, "/api/users", p, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

type createVitalResponse struct {
	Status  string `json:"status"`
	VitalID int64  `json:"vital_id"`
}

func (c *HTTPClient) CreateVital(ctx context.Context, p models.VitalPayload) (int64, error) {
	var out createVitalResponse
	if err := c.post(ctx, "/api/vitals", p, &out); err != nil {
		return 0, err
	}
	return out.VitalID, nil
}

// post sends one JSON request and decodes the success body into out.
// Status mapping: 200/201 succeed, other 4xx map to ErrRejected, everything
// else (transport errors included) maps to ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrRejected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.createClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, readErrorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	if c.clientID != "" {
		req.Header.Set(common.ClientIDHeaderName, c.clientID)
	}
}

// readErrorMessage extracts the server's {"error": ...} body when present.
func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}
