// Package search talks to the remote image-search API and applies the
// rotation/dedup policy deciding which candidates the console shows.
package search

import (
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	userAgent        = "Mozilla/5.0"
	imageFetchTimout = 20 * time.Second
)

// Client queries the remote search API.
type Client struct {
	http   *resty.Client
	fetch  *resty.Client
	apiURL string
}

func NewClient(cfg conf.SearchConfig) *Client {
	return &Client{
		http: resty.New().
			SetHeader("User-Agent", userAgent).
			SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		fetch: resty.New().
			SetHeader("User-Agent", userAgent).
			SetHeader("Referer", "https://www.pinterest.com/").
			SetTimeout(imageFetchTimout),
		apiURL: cfg.APIURL,
	}
}

type searchResponse struct {
	Status bool                 `json:"status"`
	Result []model.PinCandidate `json:"result"`
}

// Search fetches the raw result set for query. The whole operation
// fails when the remote call fails or returns no usable results.
func (c *Client) Search(query string) ([]model.PinCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.EmptyQuery
	}
	var payload searchResponse
	err := retry.Do(func() error {
		resp, err := c.http.R().SetQueryParam("q", query).Get(c.apiURL)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 500 {
			return errors.Errorf("search api returned %d", resp.StatusCode())
		}
		if !resp.IsSuccess() {
			return retry.Unrecoverable(errors.Errorf("search api returned %d", resp.StatusCode()))
		}
		return errors.Wrap(utils.Json.Unmarshal(resp.Body(), &payload), "failed decode search response")
	}, retry.Attempts(3), retry.Delay(500*time.Millisecond), retry.LastErrorOnly(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach search api")
	}
	if !payload.Status || len(payload.Result) == 0 {
		return nil, errs.NoSearchResults
	}
	return payload.Result, nil
}

// FetchImage downloads a candidate image so it can feed a sourced job.
func (c *Client) FetchImage(imageURL string) ([]byte, error) {
	resp, err := c.fetch.R().Get(imageURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed download image %s", imageURL)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("image download returned %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
