package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/usecase"
)

// Mock implementations
type MockGraph struct {
	mock.Mock
}

func (m *MockGraph) ExchangeLongLived(ctx context.Context, appID, appSecret, shortToken string) (*dto.ExchangeResult, error) {
	args := m.Called(ctx, appID, appSecret, shortToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExchangeResult), args.Error(1)
}

func (m *MockGraph) ListManagedPages(ctx context.Context, longToken string) ([]model.PageInfo, error) {
	args := m.Called(ctx, longToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageInfo), args.Error(1)
}

func (m *MockGraph) DebugToken(ctx context.Context, appID, appSecret, inputToken string) (*model.DebugInfo, error) {
	args := m.Called(ctx, appID, appSecret, inputToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DebugInfo), args.Error(1)
}

func (m *MockGraph) PingUser(ctx context.Context, token string) (bool, string) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.String(1)
}

func (m *MockGraph) PingPage(ctx context.Context, pageID, token string) (bool, string) {
	args := m.Called(ctx, pageID, token)
	return args.Bool(0), args.String(1)
}

func TestExchangeComputesAbsoluteExpiry(t *testing.T) {
	mockGraph := new(MockGraph)
	mockGraph.On("ExchangeLongLived", mock.Anything, "app-1", "secret-1", "SHORT").
		Return(&dto.ExchangeResult{AccessToken: "LONGTOKEN", ExpiresIn: 5184000}, nil)
	mockGraph.On("PingUser", mock.Anything, "LONGTOKEN").Return(true, "")

	tokenUsecase := usecase.NewTokenUsecase(mockGraph, "UTC")
	res, err := tokenUsecase.Exchange(context.Background(), dto.ExchangeRequest{
		AppID: "app-1", AppSecret: "secret-1", ShortToken: "SHORT",
	})
	require.NoError(t, err)
	assert.Equal(t, "LONGTOKEN", res.AccessToken)
	// 5184000s is 60 days
	assert.Equal(t, int64(60), res.ExpiresDays)
	assert.NotEmpty(t, res.ExpiresAt)
	assert.True(t, res.Alive)
	mockGraph.AssertExpectations(t)
}

func TestExchangeValidatesInputs(t *testing.T) {
	tokenUsecase := usecase.NewTokenUsecase(new(MockGraph), "UTC")
	_, err := tokenUsecase.Exchange(context.Background(), dto.ExchangeRequest{AppID: "app-1"})
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrKindValidation, appErr.Kind)
}

func TestPageReportEnrichesRows(t *testing.T) {
	mockGraph := new(MockGraph)
	mockGraph.On("ListManagedPages", mock.Anything, "LONG").Return([]model.PageInfo{
		{ID: "10", Name: "Page Ten", AccessToken: "tok-10", Perms: []string{"ADMINISTER"}, Category: "Brand",
			CategoryList: []model.PageCategory{{ID: "1", Name: "Brand"}, {ID: "2", Name: "Shop"}}},
	}, nil)
	mockGraph.On("DebugToken", mock.Anything, "app-1", "secret-1", "tok-10").
		Return(&model.DebugInfo{Type: "PAGE", IsValid: true, IssuedAt: 1700000000, Scopes: []string{"pages_show_list", "pages_read_engagement"}}, nil)
	mockGraph.On("PingPage", mock.Anything, "10", "tok-10").Return(true, "")

	tokenUsecase := usecase.NewTokenUsecase(mockGraph, "UTC")
	rows, err := tokenUsecase.PageReport(context.Background(), dto.PageReportRequest{
		AppID: "app-1", AppSecret: "secret-1", LongToken: "LONG",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "10", row.PageID)
	assert.Equal(t, "Brand,Shop", row.PageCategories)
	assert.Equal(t, "ADMINISTER", row.PagePerms)
	assert.Equal(t, "PAGE", row.TokenType)
	assert.Equal(t, "true", row.DebugIsValid)
	assert.Equal(t, "pages_show_list,pages_read_engagement", row.DebugScopes)
	assert.Empty(t, row.DebugExpiresAt) // expires_at 0 means never
	assert.True(t, row.Alive)
	assert.NotEmpty(t, row.LastChecked)
}

func TestPageReportDebugFailureLeavesBlankFields(t *testing.T) {
	mockGraph := new(MockGraph)
	mockGraph.On("ListManagedPages", mock.Anything, "LONG").Return([]model.PageInfo{
		{ID: "10", Name: "Page Ten", AccessToken: "tok-10"},
	}, nil)
	mockGraph.On("DebugToken", mock.Anything, "app-1", "secret-1", "tok-10").
		Return(nil, &model.GraphError{Message: "debug denied"})
	mockGraph.On("PingPage", mock.Anything, "10", "tok-10").Return(false, "Invalid token")

	tokenUsecase := usecase.NewTokenUsecase(mockGraph, "UTC")
	rows, err := tokenUsecase.PageReport(context.Background(), dto.PageReportRequest{
		AppID: "app-1", AppSecret: "secret-1", LongToken: "LONG",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].TokenType)
	assert.Empty(t, rows[0].DebugIsValid)
	assert.False(t, rows[0].Alive)
	assert.Equal(t, "Invalid token", rows[0].AliveError)
}

func TestPingRoutesToPageProbe(t *testing.T) {
	mockGraph := new(MockGraph)
	mockGraph.On("PingPage", mock.Anything, "10", "tok").Return(true, "")
	mockGraph.On("PingUser", mock.Anything, "tok").Return(false, "Invalid token")

	tokenUsecase := usecase.NewTokenUsecase(mockGraph, "UTC")

	res := tokenUsecase.Ping(context.Background(), dto.PingRequest{Token: "tok", PageID: "10"})
	assert.True(t, res.Alive)
	assert.Empty(t, res.Message)

	res = tokenUsecase.Ping(context.Background(), dto.PingRequest{Token: "tok"})
	assert.False(t, res.Alive)
	assert.Equal(t, "Invalid token", res.Message)
}

func TestInspectUsesUserPingWithoutPageID(t *testing.T) {
	mockGraph := new(MockGraph)
	mockGraph.On("DebugToken", mock.Anything, "app-1", "secret-1", "ANYTOKEN12345").
		Return(&model.DebugInfo{Type: "USER", IsValid: true}, nil)
	mockGraph.On("PingUser", mock.Anything, "ANYTOKEN12345").Return(true, "")

	tokenUsecase := usecase.NewTokenUsecase(mockGraph, "UTC")
	res, err := tokenUsecase.Inspect(context.Background(), dto.InspectRequest{
		AppID: "app-1", AppSecret: "secret-1", Token: "ANYTOKEN12345",
	})
	require.NoError(t, err)
	assert.Equal(t, "USER", res.TokenType)
	assert.Equal(t, "ANYTOK...2345", res.TokenMasked)
	assert.True(t, res.Alive)
}
