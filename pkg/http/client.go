package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// StatusError is returned by Execute when the server answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends an HTTP request with the given method, path, query parameters, headers, body, success response, and error response.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	requestURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		requestURL += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, rawBody, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hc.logger.LogRequest(method, requestURL, headers, rawBody)
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, requestURL, headers, rawBody, 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		hc.logger.LogResponseError(method, requestURL, headers, rawBody, resp.StatusCode, "", latency, err)
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		hc.logger.LogResponseSuccess(method, requestURL, headers, rawBody, resp.StatusCode, string(bodyBytes), latency)
		if successResp != nil && len(bytes.TrimSpace(bodyBytes)) > 0 {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{Status: resp.StatusCode, Body: string(bodyBytes)}
	hc.logger.LogResponseError(method, requestURL, headers, rawBody, resp.StatusCode, string(bodyBytes), latency, statusErr)

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		if err = hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// encodeBody prepares the request body according to its Go type and the default content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch body := body.(type) {
	case string:
		return bytes.NewBufferString(body), "text/plain", body, nil
	case []byte:
		return bytes.NewBuffer(body), "application/octet-stream", "", nil
	}

	var payload []byte
	var err error
	contentType := hc.defaultContentType

	switch contentType {
	case "application/xml":
		payload, err = xml.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
	default:
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		contentType = "application/json"
	}

	return bytes.NewBuffer(payload), contentType, string(payload), nil
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
