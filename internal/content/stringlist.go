package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an unordered set of free-text labels (tags) as a JSON
// array in a TEXT column. Keeping the column textual lets tag-membership
// filters run as a LIKE against the serialized form on every dialect.
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
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

func (StringList) GormDataType() string {
	return "text"
}

// Contains reports whether tag is present in the list.
func (l StringList) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

// TagPattern builds the LIKE pattern matching a serialized list containing tag.
func TagPattern(tag string) string {
	b, _ := json.Marshal(tag)
	return "%" + string(b) + "%"
}
