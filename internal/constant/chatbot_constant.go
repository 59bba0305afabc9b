package constant

const (
	ChatMessageTypeUser   = "user"
	ChatMessageTypeBot    = "bot"
	ChatMessageTypeSystem = "system"
)

// ChatHistoryLimit caps how many transcript entries the history endpoint returns.
const ChatHistoryLimit = 50

// CraftCategory is one entry of the closed craft taxonomy.
// The taxonomy is static product metadata, not a database table.
type CraftCategory struct {
	Code string
	Name string
}

var CraftCategories = []CraftCategory{
	{Code: "traditional", Name: "Traditional"},
	{Code: "clothing", Name: "Clothing"},
	{Code: "accessories", Name: "Accessories"},
	{Code: "jewelry", Name: "Jewelry"},
	{Code: "home-decor", Name: "Home Decor"},
	{Code: "crockery", Name: "Crockery"},
	{Code: "toys-games", Name: "Toys & Games"},
	{Code: "art-painting", Name: "Art & Painting"},
	{Code: "gift-ideas", Name: "Gift Ideas"},
}
