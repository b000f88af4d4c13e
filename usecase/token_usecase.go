package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/domain/repository"
	"token-tool/infrastructure/logger"
	"token-tool/infrastructure/utils"
)

type ITokenUsecase interface {
	Exchange(ctx context.Context, req dto.ExchangeRequest) (*dto.ExchangeResult, error)
	PageReport(ctx context.Context, req dto.PageReportRequest) ([]dto.PageReportRow, error)
	Inspect(ctx context.Context, req dto.InspectRequest) (*dto.InspectResult, error)
	Ping(ctx context.Context, req dto.PingRequest) dto.PingResult
}

type tokenUsecase struct {
	graph    repository.IGraph
	timezone string
	now      func() time.Time
}

func NewTokenUsecase(graph repository.IGraph, timezone string) ITokenUsecase {
	return &tokenUsecase{graph: graph, timezone: timezone, now: utils.GetCurrentTime}
}

// Exchange swaps a short-lived user token for a long-lived one, converts
// expires_in into an absolute display expiry, and pings the fresh token.
func (u *tokenUsecase) Exchange(ctx context.Context, req dto.ExchangeRequest) (*dto.ExchangeResult, error) {
	if req.AppID == "" || req.AppSecret == "" || strings.TrimSpace(req.ShortToken) == "" {
		return nil, model.NewValidationError("app_id, app_secret and short_token are required")
	}

	res, err := u.graph.ExchangeLongLived(ctx, req.AppID, req.AppSecret, strings.TrimSpace(req.ShortToken))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while exchanging user token")
		return nil, err
	}
	if res.ExpiresIn > 0 {
		res.ExpiresAt = utils.FormatLocal(u.now().Add(time.Duration(res.ExpiresIn)*time.Second), u.timezone)
		res.ExpiresDays = res.ExpiresIn / 86400
	}
	res.Alive, res.AliveError = u.graph.PingUser(ctx, res.AccessToken)
	return res, nil
}

// PageReport lists managed pages and enriches each row, one page at a time,
// with debug metadata and a liveness ping. A failed debug call leaves the
// debug fields blank; it never fails the listing.
func (u *tokenUsecase) PageReport(ctx context.Context, req dto.PageReportRequest) ([]dto.PageReportRow, error) {
	if strings.TrimSpace(req.LongToken) == "" {
		return nil, model.NewValidationError("long_token is required")
	}

	pages, err := u.graph.ListManagedPages(ctx, strings.TrimSpace(req.LongToken))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing managed pages")
		return nil, err
	}

	rows := make([]dto.PageReportRow, 0, len(pages))
	for _, p := range pages {
		row := dto.PageReportRow{
			PageID:       p.ID,
			PageName:     p.Name,
			PageCategory: p.Category,
			PagePerms:    strings.Join(p.Perms, ","),
			AccessToken:  p.AccessToken,
			LastChecked:  utils.FormatLocal(u.now(), u.timezone),
		}
		cats := make([]string, 0, len(p.CategoryList))
		for _, c := range p.CategoryList {
			cats = append(cats, c.Name)
		}
		row.PageCategories = strings.Join(cats, ",")

		if req.AppID != "" && req.AppSecret != "" && p.AccessToken != "" {
			u.fillDebugFields(ctx, req.AppID, req.AppSecret, p.AccessToken,
				&row.TokenType, &row.DebugIsValid, &row.DebugIssuedAt, &row.DebugExpiresAt, &row.DebugScopes)
		}
		if p.AccessToken != "" {
			row.Alive, row.AliveError = u.graph.PingPage(ctx, p.ID, p.AccessToken)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Inspect runs debug + ping against one arbitrary token.
func (u *tokenUsecase) Inspect(ctx context.Context, req dto.InspectRequest) (*dto.InspectResult, error) {
	token := strings.TrimSpace(req.Token)
	if req.AppID == "" || req.AppSecret == "" || token == "" {
		return nil, model.NewValidationError("app_id, app_secret and token are required")
	}

	res := &dto.InspectResult{
		TokenMasked: model.MaskToken(token),
		LastChecked: utils.FormatLocal(u.now(), u.timezone),
	}
	u.fillDebugFields(ctx, req.AppID, req.AppSecret, token,
		&res.TokenType, &res.DebugIsValid, &res.DebugIssuedAt, &res.DebugExpiresAt, &res.DebugScopes)

	if req.IsPage && req.PageID != "" {
		res.Alive, res.AliveError = u.graph.PingPage(ctx, strings.TrimSpace(req.PageID), token)
	} else {
		res.Alive, res.AliveError = u.graph.PingUser(ctx, token)
	}
	return res, nil
}

// Ping is the raw liveness probe: /me for user tokens, /{page_id} when a page
// id is supplied.
func (u *tokenUsecase) Ping(ctx context.Context, req dto.PingRequest) dto.PingResult {
	token := strings.TrimSpace(req.Token)
	var alive bool
	var message string
	if req.PageID != "" {
		alive, message = u.graph.PingPage(ctx, strings.TrimSpace(req.PageID), token)
	} else {
		alive, message = u.graph.PingUser(ctx, token)
	}
	return dto.PingResult{Alive: alive, Message: message}
}

func (u *tokenUsecase) fillDebugFields(ctx context.Context, appID, appSecret, token string, tokenType, isValid, issuedAt, expiresAt, scopes *string) {
	dbg, err := u.graph.DebugToken(ctx, appID, appSecret, token)
	if err != nil {
		// Best-effort enrichment: blank fields instead of a failed row.
		logger.GetLogger().WithField("error", err).Warn("Debug call failed, leaving introspection fields blank")
		return
	}
	*tokenType = dbg.Type
	*isValid = strconv.FormatBool(dbg.IsValid)
	*issuedAt = utils.FormatEpoch(dbg.IssuedAt, u.timezone)
	*expiresAt = utils.FormatEpoch(dbg.ExpiresAt, u.timezone)
	*scopes = strings.Join(dbg.Scopes, ",")
}
