package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks JSON over HTTP to the remote email store.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// now supplies the cache-busting timestamp for read endpoints;
	// overridable in tests.
	now func() time.Time
}

// NewClient creates a client for the email store at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// GetEmails fetches the full email collection.
func (c *Client) GetEmails(ctx context.Context) ([]Email, error) {
	var emails []Email
	if err := c.getJSON(ctx, "/get_emails", nil, &emails); err != nil {
		return nil, fmt.Errorf("failed to fetch emails: %w", err)
	}
	return emails, nil
}

// GetCategories fetches the category list with server-side counts.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.getJSON(ctx, "/get_categories", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return out.Categories, nil
}

// SearchEmails runs a server-side search over sender, subject and body.
func (c *Client) SearchEmails(ctx context.Context, query string) ([]Email, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	var emails []Email
	params := url.Values{"q": {query}}
	if err := c.getJSON(ctx, "/search", params, &emails); err != nil {
		return nil, fmt.Errorf("failed to search emails: %w", err)
	}
	return emails, nil
}

// EmailContent fetches the rendered body of one email. The server marks
// the email read as a side effect of this call.
func (c *Client) EmailContent(ctx context.Context, emailID int) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/email_content/"+strconv.Itoa(emailID), nil, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch email content: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read email content: %w", err)
	}
	return string(data), nil
}

// Predict asks the classifier for its category guess for the given text.
func (c *Client) Predict(ctx context.Context, emailText string) (string, error) {
	body := map[string]string{"email_text": emailText}
	var out struct {
		Prediction string `json:"prediction"`
	}
	if err := c.postJSON(ctx, "/predict", body, &out); err != nil {
		return "", fmt.Errorf("failed to get prediction: %w", err)
	}
	return out.Prediction, nil
}

// Learn submits a human-confirmed label for an email. The server may
// create a new category as a side effect.
func (c *Client) Learn(ctx context.Context, emailID int, emailText, correctLabel string) (string, error) {
	body := map[string]interface{}{
		"email_id":      emailID,
		"email_text":    emailText,
		"correct_label": correctLabel,
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/learn", body, &out); err != nil {
		return "", fmt.Errorf("failed to submit correction: %w", err)
	}
	return out.Message, nil
}

// BulkUpdate re-categorizes all listed emails in one request.
func (c *Client) BulkUpdate(ctx context.Context, emailIDs []int, category string) (string, error) {
	body := map[string]interface{}{
		"email_ids": emailIDs,
		"category":  category,
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/bulk_update", body, &out); err != nil {
		return "", fmt.Errorf("failed to bulk update: %w", err)
	}
	return out.Message, nil
}

// DeleteCategory removes a user-created category. Member emails are
// reassigned to primary server-side. Deleting a protected category is
// rejected with a ServerError.
func (c *Client) DeleteCategory(ctx context.Context, name string) error {
	body := map[string]string{"category": name}
	if err := c.postJSON(ctx, "/delete_category", body, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CheckMail triggers server-side ingestion of new mail.
func (c *Client) CheckMail(ctx context.Context) error {
	if err := c.postJSON(ctx, "/refresh_emails", nil, nil); err != nil {
		return fmt.Errorf("failed to check mail: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if method == http.MethodGet {
		// Cache-busting timestamp defeats intermediary caching on reads.
		if params == nil {
			params = url.Values{}
		}
		params.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, reader)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	serr := &ServerError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		serr.Message = body.Error
	}
	return serr
}
