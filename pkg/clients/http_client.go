package clients

import (
	"errors"
	"io"
	"net/http"
	"time"
)

const clientTimeout = 15 * time.Second

var ErrFailedCloseResponseBody = errors.New("failed close response body")

// HTTPClientI is the outbound HTTP surface the payment gateway client and
// the alert notifier depend on.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (int, []byte, http.Header, error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// Get issues a GET and drains the body, so callers never hold a response
// open.
func (h *HTTPClientAdapter) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header = headers

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if cerr := resp.Body.Close(); cerr != nil {
		err = errors.Join(err, ErrFailedCloseResponseBody)
	}
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, body, resp.Header, nil
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: clientTimeout},
		},
	}
}

func (h *HTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return h.client.Get(url, headers)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
