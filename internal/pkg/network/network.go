package network

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Result describes a completed fetch.
type Result struct {
	Body       []byte
	Status     string
	StatusCode int
	FinalURL   string // after redirects
}

// FetchURL issues a single GET for url with http.DefaultClient and reads the
// whole body into memory. Redirects are followed by the client. A final status
// outside 2xx is an error wrapping ErrUnexpectedStatus and no body is returned.
func FetchURL(url string) (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	result := &Result{
		Status:     res.Status,
		StatusCode: res.StatusCode,
		FinalURL:   res.Request.URL.String(),
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return result, fmt.Errorf("%w: %s for url %s", ErrUnexpectedStatus, res.Status, result.FinalURL)
	}

	bytes, err := io.ReadAll(res.Body)
	if err != nil {
		return result, fmt.Errorf("fail to read response body: %w", err)
	}
	result.Body = bytes

	return result, nil
}
