package store

import "github.com/atripati/altetudegear/domain"

func ptr(v float64) *float64 { return &v }

// uniformInventory expands sizes x colors with the same stock level, the
// shape the base catalog was seeded with.
func uniformInventory(sizes []string, colors []domain.ProductColor, stock int) []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, 0, len(sizes)*len(colors))
	for _, size := range sizes {
		for _, color := range colors {
			entries = append(entries, domain.InventoryEntry{Size: size, Color: color.Name, Stock: stock})
		}
	}
	return entries
}

// DefaultBase returns the built-in AltitudeGear catalog. Base products are
// defined once at process start and are immutable; their slugs stay
// reserved against custom imports for the life of the process.
func DefaultBase() []domain.Product {
	apparelSizes := []string{"XS", "S", "M", "L", "XL", "XXL"}

	return []domain.Product{
		{
			ID:            "1",
			Slug:          "summit-pro-jacket",
			Name:          "Summit Pro Jacket",
			Price:         299,
			OriginalPrice: ptr(349),
			Category:      "Jackets",
			Collection:    "Outdoor",
			Tags:          []string{"waterproof", "windproof", "alpine"},
			Sizes:         apparelSizes,
			Colors: []domain.ProductColor{
				{Name: "Midnight", Value: "#1a1a2e"},
				{Name: "Forest", Value: "#2d5a27"},
				{Name: "Stone", Value: "#6b6b6b"},
			},
			Inventory: uniformInventory(apparelSizes, []domain.ProductColor{
				{Name: "Midnight"}, {Name: "Forest"}, {Name: "Stone"},
			}, 8),
			Images: []domain.ProductImage{
				{Src: "/assets/product-jacket.jpg", Alt: "Summit Pro Jacket", Primary: true},
			},
			Description: "Engineered for extreme conditions. The Summit Pro Jacket features our proprietary AltitudeShield™ technology, providing unmatched protection against wind, rain, and cold while maintaining optimal breathability during intense activity.",
			Features: []string{
				"AltitudeShield™ waterproof membrane",
				"Fully taped seams",
				"Adjustable storm hood",
				"Zippered ventilation panels",
				"Interior media pocket",
			},
			IsNew:        true,
			IsBestSeller: true,
		},
		{
			ID:         "2",
			Slug:       "performance-tee",
			Name:       "Performance Tee",
			Price:      65,
			Category:   "T-Shirts",
			Collection: "Training",
			Tags:       []string{"moisture-wicking", "training"},
			Sizes:      apparelSizes,
			Colors: []domain.ProductColor{
				{Name: "Charcoal", Value: "#2d2d2d"},
				{Name: "Stone", Value: "#6b6b6b"},
				{Name: "Forest", Value: "#2d5a27"},
			},
			Inventory: uniformInventory(apparelSizes, []domain.ProductColor{
				{Name: "Charcoal"}, {Name: "Stone"}, {Name: "Forest"},
			}, 20),
			Images: []domain.ProductImage{
				{Src: "/assets/product-tshirt.jpg", Alt: "Performance Tee", Primary: true},
			},
			Description: "Built for movement. Our Performance Tee uses advanced moisture-wicking fabric that keeps you dry and comfortable during the most demanding workouts.",
			Features: []string{
				"Quick-dry fabric technology",
				"Anti-odor treatment",
				"Four-way stretch",
				"Flatlock seams",
				"Reflective logo details",
			},
			IsBestSeller: true,
		},
		{
			ID:         "3",
			Slug:       "endurance-shorts",
			Name:       "Endurance Shorts",
			Price:      85,
			Category:   "Shorts",
			Collection: "Training",
			Tags:       []string{"running", "lightweight"},
			Sizes:      apparelSizes,
			Colors: []domain.ProductColor{
				{Name: "Black", Value: "#0a0a0a"},
				{Name: "Navy", Value: "#1a1a4e"},
			},
			Inventory: uniformInventory(apparelSizes, []domain.ProductColor{
				{Name: "Black"}, {Name: "Navy"},
			}, 15),
			Images: []domain.ProductImage{
				{Src: "/assets/product-shorts.jpg", Alt: "Endurance Shorts", Primary: true},
			},
			Description: "Designed for unrestricted movement. These shorts feature a secure fit with maximum flexibility for running, training, and everyday performance.",
			Features: []string{
				"Lightweight stretch fabric",
				"Internal brief liner",
				"Zippered pocket",
				"Elastic waistband with drawcord",
				"Quick-dry technology",
			},
		},
		{
			ID:            "4",
			Slug:          "alpine-trek-boots",
			Name:          "Alpine Trek Boots",
			Price:         349,
			OriginalPrice: ptr(399),
			Category:      "Footwear",
			Collection:    "Outdoor",
			Tags:          []string{"waterproof", "hiking"},
			Sizes:         []string{"7", "8", "9", "10", "11", "12", "13"},
			Colors: []domain.ProductColor{
				{Name: "Earth", Value: "#8B4513"},
				{Name: "Black", Value: "#0a0a0a"},
			},
			Inventory: uniformInventory([]string{"7", "8", "9", "10", "11", "12", "13"}, []domain.ProductColor{
				{Name: "Earth"}, {Name: "Black"},
			}, 6),
			Images: []domain.ProductImage{
				{Src: "/assets/product-boots.jpg", Alt: "Alpine Trek Boots", Primary: true},
			},
			Description: "Conquer any terrain. The Alpine Trek Boots combine rugged durability with responsive cushioning, built to handle the most challenging mountain trails.",
			Features: []string{
				"Vibram® Megagrip outsole",
				"Gore-Tex® waterproof lining",
				"EVA midsole cushioning",
				"Reinforced toe cap",
				"Premium full-grain leather",
			},
			IsNew: true,
		},
		{
			ID:         "5",
			Slug:       "elevation-hoodie",
			Name:       "Elevation Hoodie",
			Price:      145,
			Category:   "Hoodies",
			Collection: "Everyday",
			Tags:       []string{"fleece", "casual"},
			Sizes:      apparelSizes,
			Colors: []domain.ProductColor{
				{Name: "Forest", Value: "#1a6b5a"},
				{Name: "Charcoal", Value: "#2d2d2d"},
				{Name: "Stone", Value: "#6b6b6b"},
			},
			Inventory: uniformInventory(apparelSizes, []domain.ProductColor{
				{Name: "Forest"}, {Name: "Charcoal"}, {Name: "Stone"},
			}, 12),
			Images: []domain.ProductImage{
				{Src: "/assets/product-hoodie.jpg", Alt: "Elevation Hoodie", Primary: true},
			},
			Description: "From summit to street. The Elevation Hoodie blends athletic performance with everyday comfort, featuring our signature soft-touch fleece lining.",
			Features: []string{
				"Heavyweight cotton blend",
				"Soft-touch fleece lining",
				"Adjustable drawcord hood",
				"Kangaroo pocket",
				"Ribbed cuffs and hem",
			},
			IsBestSeller: true,
		},
		{
			ID:         "6",
			Slug:       "base-layer-pro",
			Name:       "Base Layer Pro",
			Price:      95,
			Category:   "Base Layers",
			Collection: "Outdoor",
			Tags:       []string{"merino", "thermal"},
			Sizes:      apparelSizes,
			Colors: []domain.ProductColor{
				{Name: "Black", Value: "#0a0a0a"},
				{Name: "Navy", Value: "#1a1a4e"},
			},
			Inventory: uniformInventory(apparelSizes, []domain.ProductColor{
				{Name: "Black"}, {Name: "Navy"},
			}, 10),
			Images: []domain.ProductImage{
				{Src: "/assets/product-tshirt.jpg", Alt: "Base Layer Pro", Primary: true},
			},
			Description: "The foundation of performance. Our Base Layer Pro provides optimal temperature regulation and moisture management for high-altitude activities.",
			Features: []string{
				"Merino wool blend",
				"Seamless construction",
				"Temperature regulation",
				"Anti-bacterial treatment",
				"Ergonomic fit",
			},
			IsNew: true,
		},
	}
}
