// Package api talks to the remote data service: the allowed-types config, the
// file export, the row preview and the health check.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"litedata/internal/errors"
	"litedata/internal/log"
	"litedata/pkg/types"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// Version is sent in the User-Agent header. cmd overrides it at startup.
var Version = "dev"

const (
	pathConfig   = "/api/common/get-config"
	pathExport   = "/api/data/export"
	pathGenerate = "/api/data/generate"
	pathHealth   = "/api/health"

	// PreviewMaxRows caps preview requests.
	PreviewMaxRows = 5
)

var dispositionFilename = regexp.MustCompile(`filename\*?=(?:UTF-8'')?"?([^";]+)"?`)

// Client calls the data service. The zero timeout leaves the transport default
// (no deadline) in place.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request deadline on the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ServiceConfig is the response of the config endpoint.
type ServiceConfig struct {
	Message          string   `json:"message"`
	AllowedDataTypes []string `json:"allowedDataTypes"`
}

// Health is the response of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Download is a generated file as returned by the export endpoint.
type Download struct {
	// FilenameHint is taken from Content-Disposition; empty when absent.
	FilenameHint string
	ContentType  string
	Data         []byte
}

// FetchConfig retrieves the identifiers the service can generate.
func (c *Client) FetchConfig(ctx context.Context) (*ServiceConfig, error) {
	resp, endpoint, err := c.do(ctx, http.MethodGet, pathConfig, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var cfg ServiceConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, errors.NewRequestError("malformed config response", endpoint, resp.StatusCode, errors.MalformedResponse, err)
	}
	return &cfg, nil
}

// Export asks the service for a generated file. Any non-2xx status, an empty
// body or a JSON error document in place of the requested format is an error.
func (c *Client) Export(ctx context.Context, req types.ExportRequest) (*Download, error) {
	resp, endpoint, err := c.do(ctx, http.MethodPost, pathExport, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewRequestError("reading export body", endpoint, resp.StatusCode, errors.RequestFailed, err)
	}
	if len(data) == 0 {
		return nil, errors.NewRequestError("empty export body", endpoint, resp.StatusCode, errors.MalformedResponse, nil)
	}

	detected := mimetype.Detect(data)
	if req.FileFormat != types.FormatJSON && detected.Is("application/json") {
		if msg := errorMessage(data); msg != "" {
			return nil, errors.NewRequestError("service returned an error document", endpoint, resp.StatusCode,
				errors.MalformedResponse, errors.New(msg))
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = detected.String()
	}

	d := &Download{
		FilenameHint: FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType:  contentType,
		Data:         data,
	}
	log.LogWithFields(
		log.F("endpoint", endpoint),
		log.F("bytes", len(data)),
		log.F("content_type", d.ContentType),
		log.F("filename", d.FilenameHint),
	).Debug("export received")
	return d, nil
}

// Preview returns a few generated rows as decoded JSON objects. Count is
// capped at PreviewMaxRows.
func (c *Client) Preview(ctx context.Context, req types.ExportRequest) ([]map[string]interface{}, error) {
	if req.Count > PreviewMaxRows || req.Count <= 0 {
		req.Count = PreviewMaxRows
	}
	resp, endpoint, err := c.do(ctx, http.MethodPost, pathGenerate, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rows []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.NewRequestError("malformed preview response", endpoint, resp.StatusCode, errors.MalformedResponse, err)
	}
	return rows, nil
}

// Health pings the service.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	resp, endpoint, err := c.do(ctx, http.MethodGet, pathHealth, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, errors.NewRequestError("malformed health response", endpoint, resp.StatusCode, errors.MalformedResponse, err)
	}
	return &h, nil
}

// do sends the request and returns the response only for 2xx statuses. The
// caller closes the body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, string, error) {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, endpoint, errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, endpoint, errors.NewRequestError("building request", endpoint, 0, errors.RequestFailed, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", "litedata/"+Version)
	req.Header.Set("Accept", "*/*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := log.LogWithFields(log.F("request_id", requestID), log.F("method", method), log.F("endpoint", endpoint))
	logger.Debug("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, endpoint, errors.NewRequestError("request failed", endpoint, 0, errors.RequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var cause error
		if msg := errorMessage(data); msg != "" {
			cause = errors.New(msg)
		}
		return nil, endpoint, errors.NewRequestError("unexpected status", endpoint, resp.StatusCode, errors.UnexpectedStatus, cause)
	}
	logger.With(log.F("status", resp.StatusCode)).Debug("response")
	return resp, endpoint, nil
}

// errorMessage extracts {"error": "..."} from a service error document.
func errorMessage(data []byte) string {
	var doc struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	return doc.Error
}

// FilenameFromDisposition extracts the filename from a Content-Disposition
// header value. It returns "" when there is none.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	m := dispositionFilename.FindStringSubmatch(header)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// String implements fmt.Stringer for log output.
func (d *Download) String() string {
	return fmt.Sprintf("%s (%d bytes, %s)", d.FilenameHint, len(d.Data), d.ContentType)
}
