// Package sheets pulls the dashboard worksheet out of Zoho Sheet and turns it
// into the feed file the server reads.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lohum/schemetrack/internal/config"
	"github.com/lohum/schemetrack/pkg/errors"
)

// Client talks to the Zoho OAuth and Sheet APIs.
type Client struct {
	cfg  config.SheetsConfig
	http *http.Client
}

// NewClient builds a Client from config.
func NewClient(cfg config.SheetsConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// AccessToken exchanges the refresh token for a short-lived access token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"refresh_token": {c.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	body, err := c.postForm(ctx, c.cfg.TokenURL, nil, form)
	if err != nil {
		return "", err
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, errors.CodeSheetError, "decode token response")
	}
	if parsed.AccessToken == "" {
		return "", errors.New(errors.CodeSheetError, "no access token in response").
			WithDetail(parsed.Error)
	}
	return parsed.AccessToken, nil
}

// FetchRecords fetches the dashboard worksheet as the raw API payload. The
// payload is kept generic so every sheet column survives into the feed file,
// not only the ones the server models.
func (c *Client) FetchRecords(ctx context.Context, accessToken string) (map[string]any, error) {
	form := url.Values{
		"method":              {"worksheet.records.fetch"},
		"worksheet_name":      {c.cfg.Worksheet},
		"header_row":          {"1"},
		"render_option":       {"formatted"},
		"records_start_index": {"1"},
		"is_case_sensitive":   {"true"},
	}
	headers := map[string]string{
		"Authorization": "Zoho-oauthtoken " + accessToken,
	}

	endpoint := strings.TrimRight(c.cfg.APIBaseURL, "/") + "/" + c.cfg.SheetID
	body, err := c.postForm(ctx, endpoint, headers, form)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, errors.CodeSheetError, "decode sheet response")
	}
	if status, _ := payload["status"].(string); status != "success" {
		return nil, errors.New(errors.CodeSheetError, "sheet API reported failure").
			WithDetail(fmt.Sprintf("status=%v", payload["status"]))
	}
	return payload, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, headers map[string]string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSheetError, "build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSheetError, "call sheet API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSheetError, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.CodeSheetError, "sheet API returned non-2xx status").
			WithDetail(fmt.Sprintf("status=%d body=%.200s", resp.StatusCode, body))
	}
	return body, nil
}
