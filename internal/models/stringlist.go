package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a set of strings (platforms, genres) as a JSON array in a
// single text column, so the same model works across dialects.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// LikePattern returns the SQL LIKE pattern matching rows whose JSON-encoded
// list contains value. Vocabulary words never contain quotes, so matching the
// quoted token is exact.
func LikePattern(value string) string {
	return `%"` + value + `"%`
}
