package catalog

import "github.com/princinho/storefront/models"

const unsplash = "https://images.unsplash.com/"

var builtinFeatured = []string{"001", "004", "007", "010"}

func builtinProducts() []models.Product {
	return []models.Product{
		{Id: "001", Name: "Minimalist Desk Lamp", Price: 89.99, Category: "Lighting",
			Image:       unsplash + "photo-1507473885765-e6ed057f782c?q=80&w=800&auto=format&fit=crop",
			Description: "Adjustable aluminium lamp with a warm, dimmable LED."},
		{Id: "002", Name: "Pendant Light", Price: 149.0, Category: "Lighting",
			Image:       unsplash + "photo-1513506003901-1e6a229e2d15?q=80&w=800&auto=format&fit=crop",
			Description: "Spun brass shade on a braided fabric cord."},
		{Id: "003", Name: "Ceramic Table Lamp", Price: 119.5, Category: "Lighting",
			Image:       unsplash + "photo-1524484485831-a92ffc0de03f?q=80&w=800&auto=format&fit=crop",
			Description: "Hand-glazed stoneware base with a linen shade."},
		{Id: "004", Name: "Wireless Headphones", Price: 249.99, Category: "Audio",
			Image:       unsplash + "photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop",
			Description: "Over-ear headphones with active noise cancellation."},
		{Id: "005", Name: "Bookshelf Speakers", Price: 329.0, Category: "Audio",
			Image:       unsplash + "photo-1545454675-3531b543be5d?q=80&w=800&auto=format&fit=crop",
			Description: "Pair of powered speakers with a walnut veneer."},
		{Id: "006", Name: "Portable Speaker", Price: 79.0, Category: "Audio",
			Image:       unsplash + "photo-1608043152269-423dbba4e7e1?q=80&w=800&auto=format&fit=crop",
			Description: "Splash-proof speaker with twelve hours of playback."},
		{Id: "007", Name: "Leather Weekender", Price: 279.0, Category: "Accessories",
			Image:       unsplash + "photo-1553062407-98eeb64c6a62?q=80&w=800&auto=format&fit=crop",
			Description: "Full-grain leather travel bag with brass hardware."},
		{Id: "008", Name: "Canvas Tote", Price: 39.0, Category: "Accessories",
			Image:       unsplash + "photo-1544816155-12df9643f363?q=80&w=800&auto=format&fit=crop",
			Description: "Heavyweight organic cotton tote."},
		{Id: "009", Name: "Analog Watch", Price: 189.0, Category: "Accessories",
			Image:       unsplash + "photo-1524592094714-0f0654e20314?q=80&w=800&auto=format&fit=crop",
			Description: "Sapphire crystal, 38 mm steel case."},
		{Id: "010", Name: "Pour-Over Coffee Set", Price: 64.0, Category: "Kitchen",
			Image:       unsplash + "photo-1495474472287-4d71bcdd2085?q=80&w=800&auto=format&fit=crop",
			Description: "Glass dripper, carafe and reusable steel filter."},
		{Id: "011", Name: "Chef's Knife", Price: 129.0, Category: "Kitchen",
			Image:       unsplash + "photo-1593618998160-e34014e67546?q=80&w=800&auto=format&fit=crop",
			Description: "20 cm forged steel blade with an olive wood handle."},
		{Id: "012", Name: "Stoneware Mug Set", Price: 48.0, Category: "Kitchen",
			Image:       unsplash + "photo-1514228742587-6b1558fcca3d?q=80&w=800&auto=format&fit=crop",
			Description: "Four reactive-glaze mugs."},
	}
}

func builtinCategories() []models.Category {
	return []models.Category{
		{Id: "lighting", Name: "Lighting", Image: unsplash + "photo-1513506003901-1e6a229e2d15?q=80&w=800&auto=format&fit=crop"},
		{Id: "audio", Name: "Audio", Image: unsplash + "photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop"},
		{Id: "accessories", Name: "Accessories", Image: unsplash + "photo-1553062407-98eeb64c6a62?q=80&w=800&auto=format&fit=crop"},
		{Id: "kitchen", Name: "Kitchen", Image: unsplash + "photo-1495474472287-4d71bcdd2085?q=80&w=800&auto=format&fit=crop"},
	}
}
