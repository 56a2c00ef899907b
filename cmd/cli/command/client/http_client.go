package client

// http_client.go wraps the REST API for the bookhub CLI. Every request goes
// through do(), which injects the bearer header from the session and clears
// the session when the server answers 401.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookhub/cmd/cli/authentication"
	"bookhub/internal/httpapi/dto"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	session    *authentication.Session
}

// apiError is the {message} envelope every error response carries.
type apiError struct {
	Message string `json:"message"`
}

func NewHTTPClient(apiURL string, session *authentication.Session) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		session: session,
	}
}

func (c *HTTPClient) do(method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session.Active() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session is no longer valid; drop it so the next command
		// prompts for a fresh login.
		c.session.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Signup registers a new account and stores the returned session.
func (c *HTTPClient) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	c.session.Token = resp.Token
	c.session.User = resp.User
	return &resp, c.session.Save()
}

// Login authenticates and stores the returned session.
func (c *HTTPClient) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.session.Token = resp.Token
	c.session.User = resp.User
	return &resp, c.session.Save()
}

// ListBooks retrieves one catalog page.
func (c *HTTPClient) ListBooks(page int, search, genre string, year int, sort string) (*dto.BookListResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if search != "" {
		q.Set("search", search)
	}
	if genre != "" {
		q.Set("genre", genre)
	}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	var resp dto.BookListResponse
	if err := c.do(http.MethodGet, "/books?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBook retrieves a book's details with one page of reviews.
func (c *HTTPClient) GetBook(id string, reviewPage int) (*dto.BookDetailsResponse, error) {
	var resp dto.BookDetailsResponse
	path := fmt.Sprintf("/books/%s?reviewPage=%d", id, reviewPage)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateBook(req *dto.CreateBookRequest) error {
	return c.do(http.MethodPost, "/books", req, nil)
}

func (c *HTTPClient) UpdateBook(id string, req *dto.UpdateBookRequest) error {
	return c.do(http.MethodPut, "/books/"+id, req, nil)
}

func (c *HTTPClient) DeleteBook(id string) error {
	return c.do(http.MethodDelete, "/books/"+id, nil, nil)
}

func (c *HTTPClient) AddReview(bookID string, req *dto.CreateReviewRequest) error {
	return c.do(http.MethodPost, "/books/"+bookID+"/reviews", req, nil)
}

func (c *HTTPClient) UpdateReview(id string, req *dto.UpdateReviewRequest) error {
	return c.do(http.MethodPut, "/reviews/"+id, req, nil)
}

func (c *HTTPClient) DeleteReview(id string) error {
	return c.do(http.MethodDelete, "/reviews/"+id, nil, nil)
}

// UserReviews retrieves one page of a user's reviews.
func (c *HTTPClient) UserReviews(userID string, page int) (*dto.UserReviewsResponse, error) {
	var resp dto.UserReviewsResponse
	path := fmt.Sprintf("/reviews/user/%s?page=%d", userID, page)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile retrieves a user's profile with books, reviews and stats.
func (c *HTTPClient) Profile(userID string) (*dto.ProfileResponse, error) {
	var resp dto.ProfileResponse
	if err := c.do(http.MethodGet, "/users/"+userID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
