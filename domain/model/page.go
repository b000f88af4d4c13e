package model

// PageInfo is one managed page returned by /me/accounts. Transient; never
// persisted directly (page tokens enter the vault as TokenRecord).
type PageInfo struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	AccessToken  string         `json:"access_token"`
	Perms        []string       `json:"perms,omitempty"`
	Category     string         `json:"category,omitempty"`
	CategoryList []PageCategory `json:"category_list,omitempty"`
}

// PageCategory is one entry of PageInfo.CategoryList.
type PageCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DebugInfo is the data envelope of /debug_token: metadata about an inspected
// token, authorized with the app-level credential.
type DebugInfo struct {
	AppID     string   `json:"app_id"`
	Type      string   `json:"type"`
	ExpiresAt int64    `json:"expires_at"`
	IssuedAt  int64    `json:"issued_at"`
	IsValid   bool     `json:"is_valid"`
	Scopes    []string `json:"scopes"`
}
