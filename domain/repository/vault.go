package repository

import "token-tool/domain/model"

// IVault is the session-local token store: an ordered list of records mirrored
// 1:1 to a single JSON file. Every mutation persists the whole list at once.
type IVault interface {
	// Load reads the backing file into memory. An absent or unparseable file
	// yields an empty list, never an error.
	Load() []model.TokenRecord
	// All returns a copy of the current records in insertion order.
	All() []model.TokenRecord
	// Append adds one record at the end and persists.
	Append(record model.TokenRecord) error
	// Extend adds records at the end, in the order given, and persists.
	Extend(records []model.TokenRecord) error
	// Clear replaces the list with empty and persists.
	Clear() error
	// Len reports the current record count.
	Len() int
}
