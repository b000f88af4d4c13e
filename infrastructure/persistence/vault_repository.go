package persistence

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"token-tool/domain/model"
	"token-tool/domain/repository"
	"token-tool/infrastructure/logger"
)

// VaultRepository keeps the ordered token list in memory and mirrors every
// mutation to a single JSON file with a whole-file overwrite. Last writer
// wins; there is no cross-process locking.
type VaultRepository struct {
	path    string
	mu      sync.Mutex
	records []model.TokenRecord
}

// NewVaultRepository creates the store and loads whatever the backing file holds.
func NewVaultRepository(path string) repository.IVault {
	v := &VaultRepository{path: path}
	v.Load()
	return v
}

// Load reads the backing file. An absent file means an empty vault; an
// unparseable file is logged and treated the same way.
func (v *VaultRepository) Load() []model.TokenRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.records = nil
	data, err := os.ReadFile(v.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.GetLogger().WithField("error", err).Warn("Cannot read vault file, starting empty")
		}
		return nil
	}
	var records []model.TokenRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Vault file is not valid JSON, starting empty")
		return nil
	}
	v.records = records
	return v.copyLocked()
}

// All returns a copy of the current records in insertion order.
func (v *VaultRepository) All() []model.TokenRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copyLocked()
}

// Len reports the current record count.
func (v *VaultRepository) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.records)
}

// Append adds one record at the end and persists the whole list.
func (v *VaultRepository) Append(record model.TokenRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = append(v.records, record)
	return v.persistLocked()
}

// Extend adds records at the end, in the order given, and persists.
func (v *VaultRepository) Extend(records []model.TokenRecord) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = append(v.records, records...)
	return v.persistLocked()
}

// Clear empties the vault and persists.
func (v *VaultRepository) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = []model.TokenRecord{}
	return v.persistLocked()
}

func (v *VaultRepository) copyLocked() []model.TokenRecord {
	out := make([]model.TokenRecord, len(v.records))
	copy(out, v.records)
	return out
}

// persistLocked overwrites the backing file with the full list. A save failure
// surfaces to the caller; silent save loss is worse than a silent empty load.
func (v *VaultRepository) persistLocked() error {
	data, err := MarshalRecords(v.records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(v.path, data, 0o644); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while writing vault file")
		return err
	}
	return nil
}

// MarshalRecords serializes records the way the vault file stores them:
// pretty-printed JSON array, UTF-8, with HTML escaping disabled so non-ASCII
// labels survive readably.
func MarshalRecords(records []model.TokenRecord) ([]byte, error) {
	if records == nil {
		records = []model.TokenRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
