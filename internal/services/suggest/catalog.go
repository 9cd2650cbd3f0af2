package suggest

// Category groups canned questions under a topic heading.
type Category struct {
	Title     string
	Questions []string
}

// DefaultCatalog returns the built-in suggested-question catalog.
func DefaultCatalog() []Category {
	return []Category{
		{
			Title: "Getting Started",
			Questions: []string{
				"Hello! How are you?",
				"What can you do?",
				"Help me get started",
			},
		},
		{
			Title: "Products",
			Questions: []string{
				"What products do you sell?",
				"Show me all your products",
				"Tell me about smartphones",
				"Do you have laptops?",
			},
		},
		{
			Title: "Pricing",
			Questions: []string{
				"How much is the smartphone?",
				"Show me all prices",
				"What's your cheapest product?",
				"Do you have bundle deals?",
			},
		},
		{
			Title: "Information",
			Questions: []string{
				"What are your business hours?",
				"How can I contact support?",
				"Who are you?",
			},
		},
		{
			Title: "Fun",
			Questions: []string{
				"Tell me a joke",
				"You're awesome!",
				"Thank you!",
			},
		},
	}
}
