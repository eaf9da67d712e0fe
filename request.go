package gitlab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/jmgilman/go/errors"
)

// doRaw issues a single request and returns the raw response body and headers.
// The query values are appended to the URL; a non-nil form is sent as a
// form-encoded body (a non-nil empty form deliberately sends an empty body,
// which matters for edit operations). Any status other than want becomes a
// typed error carrying the remote message and status code.
func (c *Client) doRaw(ctx context.Context, method, path string, q, form url.Values, want int) ([]byte, http.Header, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}
	if c.sudo != "" {
		req.Header.Set("SUDO", c.sudo)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeNetwork, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeNetwork, "failed to read response body")
	}

	if resp.StatusCode != want {
		return nil, nil, newStatusError(resp.StatusCode, data)
	}

	return data, resp.Header, nil
}

// doStream issues a GET and hands back the response body as a stream,
// together with the response headers. The caller owns the returned
// ReadCloser. A non-200 status is drained and returned as a typed error.
func (c *Client) doStream(ctx context.Context, path string, q url.Values) (io.ReadCloser, http.Header, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}
	if c.sudo != "" {
		req.Header.Set("SUDO", c.sudo)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeNetwork, "request failed")
	}

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, nil, newStatusError(resp.StatusCode, data)
	}

	return resp.Body, resp.Header, nil
}

// do issues a request and decodes the JSON response into out (skipped when
// out is nil).
func (c *Client) do(ctx context.Context, method, path string, q, form url.Values, want int, out any) error {
	data, _, err := c.doRaw(ctx, method, path, q, form, want)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to decode response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, http.StatusOK, out)
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, form, http.StatusCreated, out)
}

func (c *Client) put(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, form, http.StatusOK, out)
}

func (c *Client) delete(ctx context.Context, path string, form url.Values) error {
	return c.do(ctx, http.MethodDelete, path, nil, form, http.StatusOK, nil)
}

// listQuery encodes a list options struct into query values.
func listQuery(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode query options")
	}
	return v, nil
}

// formValues encodes an options struct into form values. A nil options
// pointer yields an empty (but non-nil) form, so the request still carries a
// form-encoded body. Required fields are Set on the result afterwards, which
// means caller-supplied optional fields can never clobber them.
func formValues(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode form options")
	}
	if v == nil {
		v = url.Values{}
	}
	return v, nil
}
