package model

const (
	// TokenTypeUser marks a user-scoped access token.
	TokenTypeUser = "user"
	// TokenTypePage marks a token scoped to one managed page.
	TokenTypePage = "page"
)

// DefaultLabel is used when a record is added without a label.
const DefaultLabel = "(no label)"

// AddedAtLayout is the fixed textual format for TokenRecord.AddedAt (UTC, second precision).
const AddedAtLayout = "2006-01-02 15:04:05"

// TokenRecord is the unit stored in the vault. Records are kept in insertion
// order; duplicates of any field are permitted (the vault is a list, not a map).
type TokenRecord struct {
	Label   string `json:"label"`
	Token   string `json:"token"`
	Type    string `json:"type"`
	PageID  string `json:"page_id"`
	AddedAt string `json:"added_at"`
}

// MaskToken hides the middle of a token for display. Short tokens (<= 12 chars)
// keep 3 chars on each side, longer ones keep 6 and 4.
func MaskToken(t string) string {
	if t == "" {
		return ""
	}
	if len(t) <= 12 {
		n := 3
		if len(t) < n {
			n = len(t)
		}
		return t[:n] + "..." + t[len(t)-n:]
	}
	return t[:6] + "..." + t[len(t)-4:]
}
