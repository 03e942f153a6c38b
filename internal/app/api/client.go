/*
Package api wraps the backend HTTP API consumed by the client.

It owns the base URL, timeouts, outbound request logging, and the session token
header, and exposes one method per backend endpoint. Failures are reported as
*errs.CustomError values so screens can surface them uniformly.
*/
package api

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"hushchat/internal/app/chat"
	"hushchat/internal/app/user"
	"hushchat/internal/pkg/errs"
	"hushchat/internal/pkg/logx"
	"hushchat/internal/pkg/req"
	"hushchat/internal/pkg/resp"
)

// TokenHeader is the header carrying the session token on every request.
const TokenHeader = "x-access-token"

// Client is the backend API client. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	// mu protects token.
	mu    sync.RWMutex
	token string
}

// NewClient returns a Client for the given base URL. Outbound requests are
// logged via logx.RoundTripLogger.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: logx.RoundTripLogger{},
		},
	}
}

// SetToken attaches the session token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// ClearToken detaches the session token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Register creates a new account. POST /api/user/register.
func (c *Client) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	var result AuthResult
	err := c.postJSON(ctx, "/api/user/register", input, &result)
	return result, err
}

// Login authenticates an existing account. POST /api/user/login.
func (c *Client) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	var result AuthResult
	err := c.postJSON(ctx, "/api/user/login", input, &result)
	return result, err
}

// Self validates the current token and returns the profile it belongs to,
// along with a possibly rotated token. GET /api/user/self.
func (c *Client) Self(ctx context.Context) (AuthResult, error) {
	var result AuthResult
	err := c.getJSON(ctx, "/api/user/self", &result)
	return result, err
}

// GetUser fetches a profile by id. GET /api/user/:userId.
func (c *Client) GetUser(ctx context.Context, userID string) (user.User, error) {
	var result user.User
	err := c.getJSON(ctx, "/api/user/"+userID, &result)
	return result, err
}

// GetChats fetches the full message history with the given counterpart,
// newest first. GET /api/chat/:userId.
func (c *Client) GetChats(ctx context.Context, userID string) ([]chat.Message, error) {
	var result []chat.Message
	err := c.getJSON(ctx, "/api/chat/"+userID, &result)
	return result, err
}

// GetInbox fetches the counterpart-id keyed inbox mapping. GET /api/chat/inbox.
func (c *Client) GetInbox(ctx context.Context) (map[string]chat.InboxSummary, error) {
	var result map[string]chat.InboxSummary
	err := c.getJSON(ctx, "/api/chat/inbox", &result)
	return result, err
}

// SaveChat persists a text message and returns the saved document. POST /api/chat.
func (c *Client) SaveChat(ctx context.Context, draft TextDraft) (chat.Message, error) {
	var result chat.Message
	err := c.postJSON(ctx, "/api/chat", draft, &result)
	return result, err
}

// SaveImageChat persists an image message as a multipart upload and returns
// the saved document. The embedData field is only present when non-blank.
// POST /api/chat.
func (c *Client) SaveImageChat(ctx context.Context, draft ImageDraft) (chat.Message, error) {
	fields := map[string]string{
		"to":          draft.To,
		"contentType": string(chat.ContentTypeImage),
		"embedData":   strings.TrimSpace(draft.EmbedData),
	}

	request, err := req.NewMultipart(ctx, c.baseURL+"/api/chat", "content", draft.FilePath, fields)
	if err != nil {
		logx.Error(err, "Failed to build image upload request")
		return chat.Message{}, errs.NewError(errs.ErrImageFileUnreadable)
	}

	var result chat.Message
	if customErr := c.do(request, &result); customErr != nil {
		return chat.Message{}, customErr
	}

	return result, nil
}

// Decode asks the backend to extract the hidden message from a stored image.
// POST /api/chat/decode.
func (c *Client) Decode(ctx context.Context, filename, passphrase string) (string, error) {
	body := struct {
		Filename   string `json:"filename"`
		Passphrase string `json:"passphrase"`
	}{Filename: filename, Passphrase: passphrase}

	request, err := req.NewJSON(ctx, http.MethodPost, c.baseURL+"/api/chat/decode", body)
	if err != nil {
		return "", errs.NewError(errs.ErrUnknown, err)
	}

	var envelope decodeResponse
	if customErr := c.do(request, &envelope); customErr != nil {
		return "", errs.NewError(errs.ErrDecodeFailed)
	}

	if envelope.Data.DecodedMessage == "" {
		return "", errs.NewError(errs.ErrDecodeFailed)
	}

	return envelope.Data.DecodedMessage, nil
}

// getJSON issues a GET request and decodes the response into dst.
func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.NewError(errs.ErrUnknown, err)
	}

	if customErr := c.do(request, dst); customErr != nil {
		return customErr
	}

	return nil
}

// postJSON issues a POST request with a JSON body and decodes the response into dst.
func (c *Client) postJSON(ctx context.Context, path string, body, dst any) error {
	request, err := req.NewJSON(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return errs.NewError(errs.ErrUnknown, err)
	}

	if customErr := c.do(request, dst); customErr != nil {
		return customErr
	}

	return nil
}

// do attaches the token header, executes the request, and decodes the body.
func (c *Client) do(request *http.Request, dst any) *errs.CustomError {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		request.Header.Set(TokenHeader, token)
	}

	res, err := c.http.Do(request)
	if err != nil {
		return errs.NewError(errs.ErrAPIUnreachable)
	}
	defer res.Body.Close()

	if customErr := resp.CheckStatus(res); customErr != nil {
		return customErr
	}

	if dst == nil {
		return nil
	}

	if customErr := resp.DecodeJSON(res, dst); customErr != nil {
		return customErr
	}

	return nil
}
