package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	mimeJSON          = "application/json"
)

// Client performs JSON exchanges against the remote API and normalizes the outcome.
type Client struct {
	transport Transport
}

// NewClient wraps transport. A nil transport falls back to an unbounded resty transport.
func NewClient(transport Transport) *Client {
	if transport == nil {
		transport = NewRestyTransport(0)
	}
	return &Client{transport: transport}
}

// Request sends one request to url and returns the decoded body.
//
// A nil payload sends no body. Otherwise the payload is JSON-encoded and sent
// with a JSON content type. A non-2xx response yields *RequestError and a
// failed exchange yields *NetworkError.
func (c *Client) Request(ctx context.Context, method, url string, payload any) (any, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	if rec, ok := payload.(*Record); ok && rec == nil {
		payload = nil
	}

	headers := map[string]string{headerAccept: mimeJSON}
	var body []byte
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = raw
		headers[headerContentType] = mimeJSON
	}

	resp, err := c.transport.Do(ctx, method, url, headers, body)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: err}
	}
	return Normalize(resp.StatusCode(), resp.Status(), resp.Header(headerContentType), resp.Body())
}

// Call joins baseURL and path and performs Request. Network failures carry baseURL.
func (c *Client) Call(ctx context.Context, baseURL, method, path string, payload any) (any, error) {
	value, err := c.Request(ctx, method, baseURL+path, payload)
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		netErr.BaseURL = baseURL
	}
	return value, err
}

// Normalize turns a raw response into a decoded value or a *RequestError.
//
// An empty body decodes to nil. A body with a JSON content type is parsed, and
// on parse failure or any other content type it becomes {"message": <raw text>}.
func Normalize(status int, statusLine, contentType string, body []byte) (any, error) {
	var data any
	if len(body) > 0 {
		text := string(body)
		if strings.Contains(strings.ToLower(contentType), mimeJSON) {
			parsed, err := Decode(body)
			if err != nil {
				data = messageRecord(text)
			} else {
				data = parsed
			}
		} else {
			data = messageRecord(text)
		}
	}

	if status < 200 || status > 299 {
		return nil, &RequestError{
			StatusCode: status,
			Message:    failureMessage(data, reasonPhrase(status, statusLine)),
			Body:       data,
		}
	}
	return data, nil
}

func messageRecord(text string) *Record {
	return NewRecord().Set("message", text)
}

// failureMessage picks the body's message field, then a string body, then the
// body's JSON text, then the reason phrase.
func failureMessage(data any, reason string) string {
	if rec, ok := data.(*Record); ok {
		if msg, ok := rec.Get("message"); ok && truthy(msg) {
			return text(msg)
		}
	}
	switch v := data.(type) {
	case nil:
		return reason
	case string:
		if v != "" {
			return v
		}
		return reason
	default:
		raw, err := json.Marshal(v)
		if err != nil || len(raw) == 0 {
			return reason
		}
		return string(raw)
	}
}

func reasonPhrase(status int, statusLine string) string {
	line := strings.TrimSpace(statusLine)
	if code, rest, ok := strings.Cut(line, " "); ok && code == strconv.Itoa(status) {
		line = strings.TrimSpace(rest)
	} else if line == strconv.Itoa(status) {
		line = ""
	}
	if line != "" {
		return line
	}
	return http.StatusText(status)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
}
