package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/domain/repository"
	"token-tool/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const (
	// DefaultVersion is the Graph API version used when none is configured.
	DefaultVersion = "v19.0"

	// requestTimeout bounds every single call; there is no retry on top.
	requestTimeout = 30 * time.Second

	// maxPages caps pagination-following so a misbehaving server cannot make
	// ListManagedPages loop forever.
	maxPages = 100

	pageFields = "id,name,access_token,perms,category,category_list"
)

// ErrPaginationLimit is returned when /me/accounts keeps producing next links
// past the defensive page cap.
var ErrPaginationLimit = fmt.Errorf("pagination limit exceeded (%d pages)", maxPages)

// Client issues single-attempt requests against the Graph API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewGraphClient creates a client pinned to one Graph API version.
func NewGraphClient(version string) repository.IGraph {
	if version == "" {
		version = DefaultVersion
	}
	return &Client{
		baseURL:    "https://graph.facebook.com/" + version,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewGraphClientWithBase is used by tests to point the client at a mock server.
func NewGraphClientWithBase(baseURL string) repository.IGraph {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// call performs one request and decodes the 2xx body into out. Exactly one of
// (decoded out, returned error) holds: any failure becomes a *model.GraphError,
// synthesized from the raw body when the error envelope cannot be parsed.
func (c *Client) call(ctx context.Context, rawURL string, params url.Values, method string, out interface{}) error {
	if params != nil {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL = rawURL + sep + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return &model.GraphError{Message: err.Error(), Transport: true}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &model.GraphError{Message: err.Error(), Transport: true}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.GraphError{Message: err.Error(), Transport: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error *model.GraphError `json:"error"`
		}
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Error != nil && envelope.Error.Message != "" {
			return envelope.Error
		}
		return &model.GraphError{Message: fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(body)))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &model.GraphError{Message: fmt.Sprintf("invalid response body: %v", err)}
	}
	return nil
}

type exchangeParams struct {
	GrantType    string `url:"grant_type"`
	ClientID     string `url:"client_id"`
	ClientSecret string `url:"client_secret"`
	ExchangeTok  string `url:"fb_exchange_token"`
}

// ExchangeLongLived swaps a short-lived user token for a long-lived one via
// the fb_exchange_token grant.
func (c *Client) ExchangeLongLived(ctx context.Context, appID, appSecret, shortToken string) (*dto.ExchangeResult, error) {
	params, err := query.Values(exchangeParams{
		GrantType:    "fb_exchange_token",
		ClientID:     appID,
		ClientSecret: appSecret,
		ExchangeTok:  shortToken,
	})
	if err != nil {
		return nil, &model.GraphError{Message: err.Error(), Transport: true}
	}
	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := c.call(ctx, c.baseURL+"/oauth/access_token", params, http.MethodGet, &res); err != nil {
		return nil, err
	}
	return &dto.ExchangeResult{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		ExpiresIn:   res.ExpiresIn,
	}, nil
}

type accountsParams struct {
	AccessToken string `url:"access_token"`
	Fields      string `url:"fields"`
}

// ListManagedPages fetches /me/accounts and follows cursor pagination. The
// next link is an opaque fully-qualified URL that already encodes the original
// parameters, so follow-up calls pass none of their own.
func (c *Client) ListManagedPages(ctx context.Context, longToken string) ([]model.PageInfo, error) {
	params, err := query.Values(accountsParams{AccessToken: longToken, Fields: pageFields})
	if err != nil {
		return nil, &model.GraphError{Message: err.Error(), Transport: true}
	}

	rawURL := c.baseURL + "/me/accounts"
	var all []model.PageInfo
	for page := 0; ; page++ {
		if page >= maxPages {
			logger.GetLogger().WithField("pages", page).Error("Aborting page listing: next links never stopped")
			return nil, ErrPaginationLimit
		}
		var res struct {
			Data   []model.PageInfo `json:"data"`
			Paging struct {
				Next string `json:"next"`
			} `json:"paging"`
		}
		if err := c.call(ctx, rawURL, params, http.MethodGet, &res); err != nil {
			return nil, err
		}
		all = append(all, res.Data...)
		if res.Paging.Next == "" {
			break
		}
		rawURL = res.Paging.Next
		params = nil
	}
	return all, nil
}

type debugParams struct {
	InputToken  string `url:"input_token"`
	AccessToken string `url:"access_token"`
}

// DebugToken introspects inputToken. The authorizing credential is the
// app-level "appID|appSecret" token, distinct from the token being inspected.
func (c *Client) DebugToken(ctx context.Context, appID, appSecret, inputToken string) (*model.DebugInfo, error) {
	params, err := query.Values(debugParams{
		InputToken:  inputToken,
		AccessToken: fmt.Sprintf("%s|%s", appID, appSecret),
	})
	if err != nil {
		return nil, &model.GraphError{Message: err.Error(), Transport: true}
	}
	var res struct {
		Data model.DebugInfo `json:"data"`
	}
	if err := c.call(ctx, c.baseURL+"/debug_token", params, http.MethodGet, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

type pingParams struct {
	AccessToken string `url:"access_token"`
	Fields      string `url:"fields"`
}

// PingUser issues a minimal /me read. Alive means the response carried an id;
// any error message is passed through verbatim.
func (c *Client) PingUser(ctx context.Context, token string) (bool, string) {
	return c.ping(ctx, c.baseURL+"/me", token, "id")
}

// PingPage issues a minimal /{pageID} read with the page token.
func (c *Client) PingPage(ctx context.Context, pageID, token string) (bool, string) {
	return c.ping(ctx, c.baseURL+"/"+pageID, token, "id,name")
}

func (c *Client) ping(ctx context.Context, rawURL, token, fields string) (bool, string) {
	params, err := query.Values(pingParams{AccessToken: token, Fields: fields})
	if err != nil {
		return false, err.Error()
	}
	var res struct {
		ID string `json:"id"`
	}
	if err := c.call(ctx, rawURL, params, http.MethodGet, &res); err != nil {
		return false, err.Error()
	}
	return res.ID != "", ""
}
