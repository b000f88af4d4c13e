package dto

import "token-tool/domain/model"

// AddTokenRequest is the manual add-form payload. Token is the only required
// field; an empty label falls back to a placeholder.
type AddTokenRequest struct {
	Label  string `json:"label"`
	Token  string `json:"token"`
	IsPage bool   `json:"is_page"`
	PageID string `json:"page_id"`
}

// VaultRow is one record of the masked vault listing; the raw token never
// leaves through this shape.
type VaultRow struct {
	Label       string `json:"label"`
	Type        string `json:"type"`
	PageID      string `json:"page_id"`
	TokenMasked string `json:"token_masked"`
	AddedAt     string `json:"added_at"`
}

// AddPagesRequest bulk-appends every page token from a listing.
type AddPagesRequest struct {
	Pages []model.PageInfo `json:"pages"`
}

// ImportResult reports how many records an upload appended.
type ImportResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// SelectionRequest drives the IDs-based export workflow: IDs is free text
// split on commas and newlines, Search optionally narrows the listing first.
type SelectionRequest struct {
	IDs    string `json:"ids"`
	Search string `json:"search"`
}

// SelectionRow is a vault record with its pre-check state for the selection UI.
// Index refers back into the full vault list for the export call.
type SelectionRow struct {
	Index       int    `json:"index"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	PageID      string `json:"page_id"`
	TokenMasked string `json:"token_masked"`
	AddedAt     string `json:"added_at"`
	Selected    bool   `json:"selected"`
}

// ExportSelectedRequest names the final operator-chosen record indexes.
type ExportSelectedRequest struct {
	Indexes []int  `json:"indexes"`
	Format  string `json:"format"`
}
