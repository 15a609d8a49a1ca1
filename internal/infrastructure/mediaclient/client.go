package mediaclient

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the media service that stores photo blobs.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a Resty-backed media client.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(15 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(500 * time.Millisecond),
	}
}

// DeleteObject asks the media service to drop the blob behind a photo URL.
func (c *Client) DeleteObject(ctx context.Context, photoURL string) error {
	key := objectKey(photoURL)
	if key == "" {
		return fmt.Errorf("photo url has no object key: %s", photoURL)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Delete("/v1/media/{key}")
	if err != nil {
		return err
	}

	// A blob already gone is not an error.
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("media api error: %s", resp.String())
	}
	return nil
}

// Healthy reports whether the media service responds to its health probe.
func (c *Client) Healthy(ctx context.Context) bool {
	resp, err := c.httpClient.R().SetContext(ctx).Get("/healthz")
	return err == nil && resp.IsSuccess()
}

func objectKey(photoURL string) string {
	u, err := url.Parse(photoURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
