package domain

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories is the fixed classification shared between server and client.
// The ids are part of the wire contract and must not be renumbered.
var Categories = []Category{
	{ID: 1, Name: "Food"},
	{ID: 2, Name: "Transportation"},
	{ID: 3, Name: "Housing"},
	{ID: 4, Name: "Utilities"},
	{ID: 5, Name: "Healthcare"},
	{ID: 6, Name: "Entertainment"},
	{ID: 7, Name: "Education"},
	{ID: 8, Name: "Shopping"},
	{ID: 9, Name: "Personal Care"},
	{ID: 10, Name: "Debt Payments"},
	{ID: 11, Name: "Savings"},
	{ID: 12, Name: "Gifts & Donations"},
	{ID: 13, Name: "Miscellaneous"},
}

func IsValidCategoryID(categoryID int) bool {
	for _, category := range Categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}

func CategoryName(categoryID int) (string, bool) {
	for _, category := range Categories {
		if category.ID == categoryID {
			return category.Name, true
		}
	}
	return "", false
}
