package repository

import (
	"context"

	"token-tool/domain/dto"
	"token-tool/domain/model"
)

// IGraph defines the Graph API operations the tool consumes. Implementations
// make exactly one attempt per call; retries are the caller's business.
type IGraph interface {
	// ExchangeLongLived swaps a short-lived user token for a long-lived one.
	ExchangeLongLived(ctx context.Context, appID, appSecret, shortToken string) (*dto.ExchangeResult, error)
	// ListManagedPages fetches every page the user manages, following
	// cursor pagination until the server stops returning a next link.
	ListManagedPages(ctx context.Context, longToken string) ([]model.PageInfo, error)
	// DebugToken introspects a token using the app-level credential.
	DebugToken(ctx context.Context, appID, appSecret, inputToken string) (*model.DebugInfo, error)
	// PingUser probes /me with the token; alive means the response carried an id.
	PingUser(ctx context.Context, token string) (bool, string)
	// PingPage probes /{pageID} with the token.
	PingPage(ctx context.Context, pageID, token string) (bool, string)
}
