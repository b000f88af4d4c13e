package http

import (
	"io"
	"net/http"

	"token-tool/domain/dto"
	"token-tool/infrastructure/filecsv"
	"token-tool/infrastructure/logger"
	"token-tool/usecase"

	"github.com/gin-gonic/gin"
)

type IVaultHandler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	AddPages(c *gin.Context)
	Clear(c *gin.Context)
	Export(c *gin.Context)
	Import(c *gin.Context)
	Selection(c *gin.Context)
	ExportSelected(c *gin.Context)
}

type VaultHandler struct {
	vaultUsecase usecase.IVaultUsecase
}

func NewVaultHandler(vaultUsecase usecase.IVaultUsecase) IVaultHandler {
	return &VaultHandler{vaultUsecase: vaultUsecase}
}

// List handles GET /api/vault — tokens are masked in this view.
func (h *VaultHandler) List(c *gin.Context) {
	rows := h.vaultUsecase.List()
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "records": rows})
}

// Add handles POST /api/vault
func (h *VaultHandler) Add(c *gin.Context) {
	var req dto.AddTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.vaultUsecase.Add(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": true, "label": record.Label, "type": record.Type})
}

// AddPages handles POST /api/vault/pages — bulk add from a page listing.
func (h *VaultHandler) AddPages(c *gin.Context) {
	var req dto.AddPagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := h.vaultUsecase.AddPages(req.Pages)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// Clear handles DELETE /api/vault
func (h *VaultHandler) Clear(c *gin.Context) {
	if err := h.vaultUsecase.Clear(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Export handles GET /api/vault/export?format=json|csv|zip
func (h *VaultHandler) Export(c *gin.Context) {
	bundle, err := h.vaultUsecase.ExportAll()
	if err != nil {
		respondError(c, err)
		return
	}
	writeBundle(c, bundle, c.DefaultQuery("format", "json"))
}

// Import handles POST /api/vault/import (multipart file upload, JSON or CSV).
func (h *VaultHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.vaultUsecase.Import(fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Selection handles POST /api/vault/selection — returns rows pre-checked by
// the submitted page-id list.
func (h *VaultHandler) Selection(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows := h.vaultUsecase.Selection(req)

	selected := 0
	for _, r := range rows {
		if r.Selected {
			selected++
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "selected": selected, "records": rows})
}

// ExportSelected handles POST /api/vault/export-selected
func (h *VaultHandler) ExportSelected(c *gin.Context) {
	var req dto.ExportSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bundle, err := h.vaultUsecase.ExportSelected(req.Indexes)
	if err != nil {
		respondError(c, err)
		return
	}
	format := req.Format
	if format == "" {
		format = "json"
	}
	writeBundle(c, bundle, format)
}

func writeBundle(c *gin.Context, bundle *filecsv.Bundle, format string) {
	var name, mime string
	var data []byte
	switch format {
	case "csv":
		name, mime, data = bundle.CSVName, "text/csv", bundle.CSV
	case "zip":
		name, mime, data = bundle.ZipName, "application/zip", bundle.Zip
	case "json":
		name, mime, data = bundle.JSONName, "application/json", bundle.JSON
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format: " + format})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mime, data)
}
