package rules

// defaultRules returns the built-in rule set used when no rules file is
// available. It mirrors rules/chatbot_rules.yaml.
func defaultRules() []Rule {
	return []Rule{
		{
			Intent:   "greeting",
			Patterns: []string{`\b(hi|hello|hey|howdy|greetings)\b`, `good (morning|afternoon|evening)`},
			Responses: []string{
				"Hello! How can I help you today?",
				"Hi there! What can I do for you?",
				"Hey! Great to see you. How can I assist?",
			},
			Sentiment: "positive",
		},
		{
			Intent:   "capabilities",
			Patterns: []string{`what can you (do|help)`, `\bhelp me\b`, `get started`},
			Responses: []string{
				"I can answer questions about our products, pricing, business hours, and support. Try asking about any of those!",
				"I'm here to help with product info, prices, and general questions. What would you like to know?",
			},
			Sentiment: "positive",
		},
		{
			Intent:   "products",
			Patterns: []string{`\bproducts?\b`, `\b(smartphone|laptop|tablet|headphones)\b`, `what do you sell`},
			Responses: []string{
				"We sell smartphones, laptops, tablets, and headphones. Which one interests you?",
				"Our catalog covers smartphones, laptops, tablets, and headphones. Want details on any of them?",
			},
			Sentiment: "neutral",
		},
		{
			Intent:   "pricing",
			Patterns: []string{`\b(price|prices|pricing|cost|how much|cheapest|deal|deals)\b`},
			Responses: []string{
				"Smartphones start at $499, laptops at $899, tablets at $329, and headphones at $149.",
				"Our prices: smartphone $499, laptop $899, tablet $329, headphones $149. Bundles save 10%!",
			},
			Sentiment: "neutral",
		},
		{
			Intent:   "hours",
			Patterns: []string{`\b(hours|open|close|opening|closing)\b`, `when are you`},
			Responses: []string{
				"We're open Monday to Friday, 9am to 6pm, and Saturday 10am to 4pm.",
			},
			Sentiment: "neutral",
		},
		{
			Intent:   "support",
			Patterns: []string{`\b(support|contact|agent|human|technical)\b`, `talk to (someone|a person)`},
			Responses: []string{
				"You can reach our support team at support@example.com or call 1-800-555-0123.",
				"For technical support, email support@example.com and we'll get back within one business day.",
			},
			Sentiment: "neutral",
		},
		{
			Intent:   "joke",
			Patterns: []string{`\b(joke|funny|laugh)\b`},
			Responses: []string{
				"Why did the computer go to the doctor? Because it had a virus!",
				"Why do programmers prefer dark mode? Because light attracts bugs!",
			},
			Sentiment: "positive",
		},
		{
			Intent:   "thanks",
			Patterns: []string{`\b(thanks|thank you|awesome|appreciate)\b`},
			Responses: []string{
				"You're welcome! Anything else I can help with?",
				"Happy to help! 😊",
			},
			Sentiment: "positive",
		},
		{
			Intent:   "goodbye",
			Patterns: []string{`\b(bye|goodbye|see you|farewell)\b`},
			Responses: []string{
				"Goodbye! Have a great day!",
				"See you later! Come back anytime.",
			},
			Sentiment: "positive",
		},
		{
			Intent:   "identity",
			Patterns: []string{`who are you`, `\byour name\b`},
			Responses: []string{
				"I'm a rule-based assistant that answers questions about our store.",
			},
			Sentiment: "neutral",
		},
	}
}

// defaultFallbacks returns the built-in fallback responses.
func defaultFallbacks() []string {
	return []string{
		"I'm not sure I understand. Can you rephrase that?",
		"Hmm, I don't have an answer for that. Try asking about products, prices, or hours.",
		"Sorry, that's outside what I know. Ask me about our store!",
	}
}
