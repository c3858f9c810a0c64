// Package rest is the HTTP client every adapter goes through: bearer-token
// header injection, JSON and multipart bodies, and the shared response
// contract (decode JSON on 2xx, parse an error payload on anything else).
// One attempt per call, no retry or backoff.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	apperrors "gather/internal/platform/errors"
	"gather/internal/platform/id"
)

type Client struct {
	base       string
	httpClient *http.Client
	ids        id.Generator
}

func New(baseURL string, ids id.Generator) *Client {
	return &Client{
		base:       strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		ids:        ids,
	}
}

// Form is an ordered multipart body: text fields first, then an optional
// file part whose content type is derived from the file extension alone.
type Form struct {
	Fields []Field
	File   *FileAttachment
}

type Field struct {
	Name  string
	Value string
}

// FileAttachment names the local file to attach. The part is always sent
// as photo.<ext> with content type image/<ext>, matching what the backend
// expects from its clients.
type FileAttachment struct {
	FieldName string
	Path      string
}

func (c *Client) GetJSON(ctx context.Context, path, token string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) PostJSON(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, token, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) SubmitForm(ctx context.Context, method, path, token string, form Form, out any) error {
	buf := bytes.Buffer{}
	writer := multipart.NewWriter(&buf)
	for _, field := range form.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return fmt.Errorf("write form field %s: %w", field.Name, err)
		}
	}
	if form.File != nil {
		if err := attachFile(writer, form.File); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, token, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) Delete(ctx context.Context, path, token string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.ids != nil {
		req.Header.Set("X-Request-ID", c.ids.New())
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp, payload)
	}
	if out == nil {
		return nil
	}
	if !isJSON(resp.Header.Get("Content-Type")) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnexpectedFormat, resp.Header.Get("Content-Type"))
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorBody covers the shapes the backend is known to return: a flat error
// string under "error" or "message", plus optional per-field messages.
type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func newRequestError(resp *http.Response, payload []byte) error {
	reqErr := &apperrors.RequestError{Status: resp.StatusCode, Body: string(payload)}
	if isJSON(resp.Header.Get("Content-Type")) {
		body := errorBody{}
		if err := json.Unmarshal(payload, &body); err == nil {
			reqErr.Message = body.Error
			if reqErr.Message == "" {
				reqErr.Message = body.Message
			}
			reqErr.Fields = body.Errors
		}
	}
	if reqErr.Message == "" {
		reqErr.Message = strings.TrimSpace(string(payload))
	}
	return reqErr
}

func attachFile(writer *multipart.Writer, file *FileAttachment) error {
	ext := strings.TrimPrefix(filepath.Ext(file.Path), ".")
	if ext == "" {
		return fmt.Errorf("image file %s has no extension", file.Path)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, "photo."+ext))
	header.Set("Content-Type", "image/"+ext)
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	src, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = src.Close() }()
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
