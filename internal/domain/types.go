package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a list of strings persisted as text[] on PostgreSQL and as the
// array literal text encoding on other dialects. A nil list is stored as empty.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("failed to scan string list: %w", err)
	}
	if arr == nil {
		*l = StringList{}
		return nil
	}
	*l = StringList(arr)
	return nil
}

// GormDBDataType picks the column type per dialect
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Contains reports whether s is in the list
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Distinct returns the list without duplicates, keeping first-seen order
func (l StringList) Distinct() StringList {
	seen := make(map[string]struct{}, len(l))
	out := make(StringList, 0, len(l))
	for _, v := range l {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Union returns l followed by the entries of other that l does not already hold
func (l StringList) Union(other []string) StringList {
	merged := make(StringList, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return merged.Distinct()
}

// SyncWarning records a degraded step that did not fail the company it belongs to
type SyncWarning struct {
	CompanyID   int    `json:"companyId"`
	CompanyName string `json:"companyName"`
	Stage       string `json:"stage"`
	Message     string `json:"message"`
}

// Warning stages
const (
	WarningStageContact   = "contact"
	WarningStageAdditions = "agreement_additions"
)

// SyncWarnings is persisted as a JSON document
type SyncWarnings []SyncWarning

// Value implements driver.Valuer
func (w SyncWarnings) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]SyncWarning(w))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (w *SyncWarnings) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*w = SyncWarnings{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for sync warnings: %T", src)
	}
	var out []SyncWarning
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode sync warnings: %w", err)
	}
	if out == nil {
		out = []SyncWarning{}
	}
	*w = out
	return nil
}

// SecretUpdate carries a write-only secret across the API boundary.
// An omitted or null JSON value keeps the stored secret; a string replaces it.
type SecretUpdate struct {
	set   bool
	value string
}

// KeepSecret leaves the stored secret untouched
func KeepSecret() SecretUpdate {
	return SecretUpdate{}
}

// ReplaceSecret overwrites the stored secret with value
func ReplaceSecret(value string) SecretUpdate {
	return SecretUpdate{set: true, value: value}
}

// Replaces reports whether the update carries a new value
func (s SecretUpdate) Replaces() bool {
	return s.set
}

// Value returns the replacement value. It is empty when Replaces is false.
func (s SecretUpdate) Value() string {
	return s.value
}

// UnmarshalJSON implements json.Unmarshaler
func (s *SecretUpdate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = KeepSecret()
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("secret must be a string or null: %w", err)
	}
	*s = ReplaceSecret(v)
	return nil
}

// MarshalJSON never reveals the secret
func (s SecretUpdate) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
