package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EmployeeStatus represents whether an employee is on the active payroll
type EmployeeStatus int

const (
	EmployeeStatusActive   EmployeeStatus = 0
	EmployeeStatusInactive EmployeeStatus = 1
)

func (s EmployeeStatus) String() string {
	names := [...]string{"Active", "Inactive"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Active"
	}
	return names[s]
}

func (s EmployeeStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EmployeeStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EmployeeStatus(i)
		return nil
	}
	switch str {
	case "Active":
		*s = EmployeeStatusActive
	case "Inactive":
		*s = EmployeeStatusInactive
	}
	return nil
}

func (s EmployeeStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EmployeeStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EmployeeStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EmployeeStatus(v)
	case int:
		*s = EmployeeStatus(v)
	}
	return nil
}
