package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory classifies back-office expenses
type ExpenseCategory int

const (
	ExpenseCategoryUtilities ExpenseCategory = iota
	ExpenseCategorySupplies
	ExpenseCategoryRent
	ExpenseCategoryMaintenance
	ExpenseCategoryOther
)

var expenseCategoryNames = [...]string{
	"Utilities",
	"Supplies",
	"Rent",
	"Maintenance",
	"Other",
}

func (c ExpenseCategory) String() string {
	if int(c) < 0 || int(c) >= len(expenseCategoryNames) {
		return "Other"
	}
	return expenseCategoryNames[c]
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ExpenseCategory(i)
		return nil
	}
	for i, name := range expenseCategoryNames {
		if name == str {
			*c = ExpenseCategory(i)
			return nil
		}
	}
	*c = ExpenseCategoryOther
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ExpenseCategory(v)
	case int:
		*c = ExpenseCategory(v)
	}
	return nil
}
