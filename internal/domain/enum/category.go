package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Category represents a menu category
type Category int

const (
	CategoryChicken Category = iota
	CategoryBeef
	CategoryMutton
	CategoryFish
	CategoryVegetables
	CategoryRice
	CategoryKhichuri
	CategoryBiriyani
	CategoryKacchi
	CategoryDrinks
	CategoryDesserts
)

var categoryNames = [...]string{
	"Chicken",
	"Beef",
	"Mutton",
	"Fish",
	"Vegetables",
	"Rice",
	"Khichuri",
	"Biriyani",
	"Kacchi",
	"Drinks",
	"Desserts",
}

// Categories returns every menu category in declaration order.
// Report bucketing iterates this list so no category can fall through silently.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return "Chicken"
	}
	return categoryNames[c]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = Category(i)
		return nil
	}
	for i, name := range categoryNames {
		if name == str {
			*c = Category(i)
			return nil
		}
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *Category) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryChicken
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = Category(v)
	case int:
		*c = Category(v)
	}
	return nil
}
