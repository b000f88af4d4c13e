package dto

// ExchangeRequest carries the inputs for the long-lived token exchange.
type ExchangeRequest struct {
	AppID      string `json:"app_id"`
	AppSecret  string `json:"app_secret"`
	ShortToken string `json:"short_token"`
}

// ExchangeResult is the outcome of a successful exchange. ExpiresAt is a
// display value computed from expires_in at call time; it is never persisted.
type ExchangeResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	ExpiresDays int64  `json:"expires_days,omitempty"`
	Alive       bool   `json:"alive"`
	AliveError  string `json:"alive_error,omitempty"`
}

// PageReportRequest asks for the managed-pages listing. When AppID/AppSecret
// are present each row is enriched with debug metadata; enrichment failures
// degrade the row to blank fields.
type PageReportRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
	LongToken string `json:"long_token"`
}

// PageReportRow is one managed page with its token plus best-effort
// introspection and liveness results.
type PageReportRow struct {
	PageID         string `json:"page_id"`
	PageName       string `json:"page_name"`
	PageCategory   string `json:"page_category"`
	PageCategories string `json:"page_categories"`
	PagePerms      string `json:"page_perms"`
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	DebugIsValid   string `json:"debug_is_valid"`
	DebugIssuedAt  string `json:"debug_issued_at"`
	DebugExpiresAt string `json:"debug_expires_at"`
	DebugScopes    string `json:"debug_scopes"`
	Alive          bool   `json:"alive"`
	AliveError     string `json:"alive_error"`
	LastChecked    string `json:"last_checked"`
}

// InspectRequest checks one arbitrary token (debug + ping).
type InspectRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
	Token     string `json:"token"`
	IsPage    bool   `json:"is_page"`
	PageID    string `json:"page_id"`
}

// InspectResult is the debug + ping outcome for a single token.
type InspectResult struct {
	TokenMasked    string `json:"token_masked"`
	TokenType      string `json:"token_type"`
	DebugIsValid   string `json:"debug_is_valid"`
	DebugIssuedAt  string `json:"debug_issued_at"`
	DebugExpiresAt string `json:"debug_expires_at"`
	DebugScopes    string `json:"debug_scopes"`
	Alive          bool   `json:"alive"`
	AliveError     string `json:"alive_error"`
	LastChecked    string `json:"last_checked"`
}

// PingRequest is a raw liveness probe. PageID switches the probe from /me to
// /{page_id}.
type PingRequest struct {
	Token  string `json:"token"`
	PageID string `json:"page_id"`
}

// PingResult reports liveness; Message passes the remote error through verbatim.
type PingResult struct {
	Alive   bool   `json:"alive"`
	Message string `json:"message"`
}
