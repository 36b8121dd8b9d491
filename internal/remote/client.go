// Package remote is the typed client for the Arkan PHP backend. Every
// screen of the console goes through it: query-string GETs, JSON posts,
// the one form-urlencoded status endpoint and multipart file uploads. The
// backend stays the single authority for all data; this package only moves
// bytes and enforces the response taxonomy at the boundary.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	custom_error "github.com/mEdHaT33/Arkan/pkg/errors"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient builds a client for the backend at baseURL (no trailing
// slash). The cookie jar keeps the PHP session cookie between calls, the
// way the browser did with credentials:include.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New never fails with a nil options struct.
		panic(err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		log: log,
	}
}

func (c *Client) endpoint(name string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(name, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// envelope is the common {success, message} wrapper every PHP endpoint
// uses. Some endpoints report errors under "error" instead of "message".
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) getJSON(ctx context.Context, name string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(name, query), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, name, out)
}

func (c *Client) postJSON(ctx context.Context, name string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(name, nil), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, name, out)
}

func (c *Client) postForm(ctx context.Context, name string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(name, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return c.do(req, name, out)
}

// FileUpload is a file streamed through to the backend.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

func (c *Client) postMultipart(ctx context.Context, name string, fields map[string]string, files map[string]FileUpload, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("read upload %s: %w", field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(name, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return c.do(req, name, out)
}

// do executes the request and applies the response taxonomy: transport
// failures, a non-2xx status or {"success":false} payloads, and malformed
// bodies each map to their own error type. Nothing is ever retried.
func (c *Client) do(req *http.Request, name string, out interface{}) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("remote call failed",
			zap.String("endpoint", name),
			zap.Error(err),
		)
		return &custom_error.TransportError{Endpoint: name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &custom_error.TransportError{Endpoint: name, Err: err}
	}

	c.log.Debug("remote call",
		zap.String("endpoint", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	var env envelope
	jsonErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.text()
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return &custom_error.RemoteError{Endpoint: name, Status: resp.StatusCode, Message: message}
	}

	if jsonErr != nil {
		// Some legacy endpoints answer plain text; the old SPA accepted
		// bodies mentioning success/updated as a positive reply.
		text := strings.ToLower(string(body))
		if strings.Contains(text, "success") || strings.Contains(text, "updated") {
			return nil
		}
		return &custom_error.DecodeError{Endpoint: name, Body: string(body)}
	}

	if env.Success != nil && !*env.Success {
		return &custom_error.RemoteError{Endpoint: name, Status: resp.StatusCode, Message: env.text()}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &custom_error.DecodeError{Endpoint: name, Body: string(body)}
		}
	}
	return nil
}
