package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SalaryType represents how an employee's salary is paid
type SalaryType int

const (
	SalaryTypeMonthly SalaryType = 0
	SalaryTypeDaily   SalaryType = 1
)

func (t SalaryType) String() string {
	names := [...]string{"Monthly", "Daily"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Monthly"
	}
	return names[t]
}

func (t SalaryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *SalaryType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = SalaryType(i)
		return nil
	}
	switch str {
	case "Monthly":
		*t = SalaryTypeMonthly
	case "Daily":
		*t = SalaryTypeDaily
	}
	return nil
}

func (t SalaryType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *SalaryType) Scan(value interface{}) error {
	if value == nil {
		*t = SalaryTypeMonthly
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = SalaryType(v)
	case int:
		*t = SalaryType(v)
	}
	return nil
}
