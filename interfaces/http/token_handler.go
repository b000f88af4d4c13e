package http

import (
	"errors"
	"net/http"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/infrastructure/configuration"
	"token-tool/infrastructure/logger"
	"token-tool/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

type ITokenHandler interface {
	Exchange(c *gin.Context)
	Pages(c *gin.Context)
	Inspect(c *gin.Context)
	Ping(c *gin.Context)
}

type TokenHandler struct {
	tokenUsecase usecase.ITokenUsecase
}

func NewTokenHandler(tokenUsecase usecase.ITokenUsecase) ITokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// Exchange handles POST /api/token/exchange
func (h *TokenHandler) Exchange(c *gin.Context) {
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAppCredentials(&req.AppID, &req.AppSecret)

	res, err := h.tokenUsecase.Exchange(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Pages handles POST /api/token/pages
func (h *TokenHandler) Pages(c *gin.Context) {
	var req dto.PageReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAppCredentials(&req.AppID, &req.AppSecret)

	rows, err := h.tokenUsecase.PageReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "pages": rows})
}

// Inspect handles POST /api/token/inspect
func (h *TokenHandler) Inspect(c *gin.Context) {
	var req dto.InspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAppCredentials(&req.AppID, &req.AppSecret)

	res, err := h.tokenUsecase.Inspect(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Ping handles POST /api/token/ping
func (h *TokenHandler) Ping(c *gin.Context) {
	var req dto.PingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.tokenUsecase.Ping(c.Request.Context(), req))
}

// fillAppCredentials falls back to configured app credentials when the request
// leaves them blank.
func fillAppCredentials(appID, appSecret *string) {
	conf := configuration.C.OAuth.Facebook
	if *appID == "" {
		*appID = conf.AppID
	}
	if *appSecret == "" {
		*appSecret = conf.AppSecret
	}
}

// respondError maps the closed error-kind set onto HTTP statuses; every branch
// carries a human-readable message.
func respondError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		status := http.StatusBadGateway
		switch appErr.Kind {
		case model.ErrKindValidation:
			status = http.StatusBadRequest
		case model.ErrKindParse:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}
	var graphErr *model.GraphError
	if errors.As(err, &graphErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": graphErr.Message, "kind": graphErr.Kind()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
