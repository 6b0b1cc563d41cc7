package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemStatus represents the availability of a menu item
type ItemStatus int

const (
	ItemStatusAvailable    ItemStatus = 0
	ItemStatusNotAvailable ItemStatus = 1
)

func (s ItemStatus) String() string {
	names := [...]string{"Available", "Not Available"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Available"
	}
	return names[s]
}

func (s ItemStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ItemStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ItemStatus(i)
		return nil
	}
	switch str {
	case "Available":
		*s = ItemStatusAvailable
	case "Not Available":
		*s = ItemStatusNotAvailable
	}
	return nil
}

func (s ItemStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ItemStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ItemStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ItemStatus(v)
	case int:
		*s = ItemStatus(v)
	}
	return nil
}
