package usecase

import (
	"strings"

	"token-tool/domain/dto"
	"token-tool/domain/model"
	"token-tool/domain/repository"
	"token-tool/infrastructure/filecsv"
	"token-tool/infrastructure/logger"
	"token-tool/infrastructure/utils"
)

type IVaultUsecase interface {
	List() []dto.VaultRow
	Add(req dto.AddTokenRequest) (*model.TokenRecord, error)
	AddPages(pages []model.PageInfo) (int, error)
	Import(filename string, data []byte) (*dto.ImportResult, error)
	ExportAll() (*filecsv.Bundle, error)
	Selection(req dto.SelectionRequest) []dto.SelectionRow
	ExportSelected(indexes []int) (*filecsv.Bundle, error)
	Clear() error
}

type vaultUsecase struct {
	vault repository.IVault
}

func NewVaultUsecase(vault repository.IVault) IVaultUsecase {
	return &vaultUsecase{vault: vault}
}

// List returns the vault with tokens masked for display.
func (u *vaultUsecase) List() []dto.VaultRow {
	records := u.vault.All()
	rows := make([]dto.VaultRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.VaultRow{
			Label:       r.Label,
			Type:        r.Type,
			PageID:      r.PageID,
			TokenMasked: model.MaskToken(r.Token),
			AddedAt:     r.AddedAt,
		})
	}
	return rows
}

// Add appends one manually entered record. The token is the only required
// field; no dedup is attempted.
func (u *vaultUsecase) Add(req dto.AddTokenRequest) (*model.TokenRecord, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return nil, model.NewValidationError("token is required")
	}
	record := model.TokenRecord{
		Label:   req.Label,
		Token:   token,
		Type:    model.TokenTypeUser,
		PageID:  strings.TrimSpace(req.PageID),
		AddedAt: utils.GetCurrentTime().Format(model.AddedAtLayout),
	}
	if record.Label == "" {
		record.Label = model.DefaultLabel
	}
	if req.IsPage {
		record.Type = model.TokenTypePage
	} else {
		record.PageID = ""
	}
	if err := u.vault.Append(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// AddPages appends every page token from a listing, labelled by page name
// (page id when the name is empty).
func (u *vaultUsecase) AddPages(pages []model.PageInfo) (int, error) {
	now := utils.GetCurrentTime().Format(model.AddedAtLayout)
	records := make([]model.TokenRecord, 0, len(pages))
	for _, p := range pages {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		records = append(records, model.TokenRecord{
			Label:   label,
			Token:   p.AccessToken,
			Type:    model.TokenTypePage,
			PageID:  p.ID,
			AddedAt: now,
		})
	}
	if err := u.vault.Extend(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Import parses an uploaded JSON or CSV file and appends its records as-is.
// Duplicates against existing records are the operator's responsibility.
func (u *vaultUsecase) Import(filename string, data []byte) (*dto.ImportResult, error) {
	records, err := filecsv.Parse(filename, data)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while parsing import file")
		return nil, err
	}
	if err := u.vault.Extend(records); err != nil {
		return nil, err
	}
	return &dto.ImportResult{Imported: len(records), Total: u.vault.Len()}, nil
}

// ExportAll bundles the whole vault as JSON, CSV and a ZIP of both.
func (u *vaultUsecase) ExportAll() (*filecsv.Bundle, error) {
	return filecsv.Export(u.vault.All(), "token_vault", utils.GetCurrentTime())
}

// Selection builds the pre-checked selection table for the IDs-driven export:
// the free-text id list pre-checks rows whose page_id matches exactly, and an
// optional keyword narrows the listing over label/page_id/token.
func (u *vaultUsecase) Selection(req dto.SelectionRequest) []dto.SelectionRow {
	wanted := make(map[string]struct{})
	for _, id := range utils.SplitIDList(req.IDs) {
		wanted[id] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	records := u.vault.All()
	rows := make([]dto.SelectionRow, 0, len(records))
	for i, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Label), search) &&
			!strings.Contains(strings.ToLower(r.PageID), search) &&
			!strings.Contains(strings.ToLower(r.Token), search) {
			continue
		}
		_, selected := wanted[r.PageID]
		rows = append(rows, dto.SelectionRow{
			Index:       i,
			Label:       r.Label,
			Type:        r.Type,
			PageID:      r.PageID,
			TokenMasked: model.MaskToken(r.Token),
			AddedAt:     r.AddedAt,
			Selected:    selected,
		})
	}
	return rows
}

// ExportSelected bundles the operator's final selection, by vault index.
func (u *vaultUsecase) ExportSelected(indexes []int) (*filecsv.Bundle, error) {
	records := u.vault.All()
	selected := make([]model.TokenRecord, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(records) {
			return nil, model.NewValidationError("selection index %d out of range", i)
		}
		selected = append(selected, records[i])
	}
	if len(selected) == 0 {
		return nil, model.NewValidationError("nothing selected")
	}
	return filecsv.Export(selected, "token_selected", utils.GetCurrentTime())
}

// Clear empties the vault.
func (u *vaultUsecase) Clear() error {
	return u.vault.Clear()
}
