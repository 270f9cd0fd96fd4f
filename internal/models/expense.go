package models

// Category groups expenses in the tracker.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryOther         Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryFood:          "🍕 Food",
	CategoryTransport:     "🚗 Transport",
	CategoryShopping:      "🛍️ Shopping",
	CategoryEntertainment: "🎬 Entertainment",
	CategoryBills:         "⚡ Bills",
	CategoryOther:         "📦 Other",
}

// ParseCategory maps a raw category to a known one. Unknown values become CategoryOther.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := categoryLabels[c]; ok {
		return c
	}
	return CategoryOther
}

// Label returns the display label for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// Expense is a personal expense logged by a user.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// UserID is the name of the user who logged the expense.
	UserID string

	Category Category

	// Amount is the money spent. Always positive.
	Amount float64

	// Date is the calendar day of the expense in YYYY-MM-DD format.
	Date string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
