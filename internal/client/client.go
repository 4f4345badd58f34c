// Package client talks to the blog JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client is an HTTP client bound to one API address.
type Client struct {
	http.Client
	Addr string
}

// Article is an article as returned by the API. Image holds the raw image JSON.
type Article struct {
	ID      int64  `json:"blog_id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Article string `json:"article"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

// Comment is a comment as returned by the API.
type Comment struct {
	ID        int64  `json:"comment_id"`
	BlogID    int64  `json:"blog_id"`
	Commenter string `json:"commenter"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// NewComment is the body of a comment creation request.
type NewComment struct {
	Commenter string `json:"commenter"`
	Comment   string `json:"comment"`
	BlogID    int64  `json:"blog_id"`
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type rowsEnvelope[T any] struct {
	Rows []T `json:"rows"`
}

// ListArticles fetches every article.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out rowsEnvelope[Article]
	if err := c.doJSON(ctx, http.MethodGet, "/api/blogs", nil, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

// GetArticle fetches one article. It returns nil without error when the article does not exist.
func (c *Client) GetArticle(ctx context.Context, id int64) (*Article, error) {
	var out rowsEnvelope[Article]
	if err := c.doJSON(ctx, http.MethodGet, "/api/blogs/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	if len(out.Rows) == 0 {
		return nil, nil
	}
	return &out.Rows[0], nil
}

// ListComments fetches the comments of an article in creation order.
func (c *Client) ListComments(ctx context.Context, articleID int64) ([]Comment, error) {
	var out rowsEnvelope[Comment]
	if err := c.doJSON(ctx, http.MethodGet, "/api/comment/"+strconv.FormatInt(articleID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

// CreateComment posts a new comment and returns it as stored.
func (c *Client) CreateComment(ctx context.Context, comment NewComment) (*Comment, error) {
	var out rowsEnvelope[Comment]
	if err := c.doJSON(ctx, http.MethodPost, "/api/comment/create", comment, &out); err != nil {
		return nil, err
	}
	if len(out.Rows) == 0 {
		return nil, errors.New("api: create comment returned no rows")
	}
	return &out.Rows[0], nil
}

// DeleteComment deletes one comment.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/comment/delete/"+strconv.FormatInt(commentID, 10), nil, nil)
}

// FetchImage opens a stored image. The caller closes the returned body.
func (c *Client) FetchImage(ctx context.Context, filename string) (io.ReadCloser, error) {
	resp, err := c.send(ctx, http.MethodGet, ImagePath(filename), nil, "")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// ImagePath is the API path an image is served from.
func ImagePath(filename string) string {
	return "/api/" + url.PathEscape(filename)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.send(ctx, method, path, body, contentType)
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
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
	}
	return apiErr
}
