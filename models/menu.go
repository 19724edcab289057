package models

// MenuItem adalah satu item menu yang bisa dipesan. Katalog bersifat statis:
// didefinisikan saat proses start dan tidak berubah saat runtime.
type MenuItem struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Price       int64    `json:"price" bson:"price"`
	Image       string   `json:"image" bson:"image"`
	Badges      []string `json:"badges,omitempty" bson:"badges,omitempty"`
}

// MenuItems berisi seluruh katalog. Harga dalam Rupiah (satuan terkecil).
var MenuItems = []MenuItem{
	{
		ID:          "chicken-sandwich",
		Name:        "Chicken Sandwich",
		Description: "Savory grilled chicken with crisp veggies, pickles, and house-made sauce.",
		Price:       32000,
		Image:       "/images/chicken-sandwich.svg",
		Badges:      []string{"Best Seller", "Protein+"},
	},
	{
		ID:          "fruity-sandwich",
		Name:        "Fruity Sandwich",
		Description: "Fluffy milk bread layered with seasonal fruits, silky cream, and honey drizzle.",
		Price:       30000,
		Image:       "/images/fruity-sandwich.svg",
		Badges:      []string{"Fresh Daily"},
	},
	{
		ID:          "spicy-egg-sandwich",
		Name:        "Spicy Egg-Mayo Sandwich",
		Description: "Creamy egg mayo whipped with chilli crisp, sweet corn, and crunchy toppings.",
		Price:       28000,
		Image:       "/images/spicy-egg-sandwich.svg",
		Badges:      []string{"Level 1 Heat"},
	},
}

var menuLookup = buildMenuLookup(MenuItems)

func buildMenuLookup(items []MenuItem) map[string]MenuItem {
	m := make(map[string]MenuItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}

// LookupMenuItem mencari item menu berdasarkan slug.
// Tidak ada mode error selain "tidak ketemu".
func LookupMenuItem(slug string) (MenuItem, bool) {
	item, ok := menuLookup[slug]
	return item, ok
}
