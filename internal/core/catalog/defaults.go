package catalog

import "vyria-server/internal/database/model"

// Embedded catalog data. Seeded into the database at startup and used
// directly when the database is unreachable.

var defaultLanguages = []Language{
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "en", Name: "English"},
}

var defaultScenarios = []model.Scenario{
	{
		ID:        1,
		Title:     "Ordering at a café",
		Scenario:  "You walk into a small café and order a drink and something to eat.",
		Character: "a friendly barista who chats with regulars",
		Setting:   "a cozy neighborhood café in the morning rush",
		MinLevel:  "A1",
	},
	{
		ID:        2,
		Title:     "Asking for directions",
		Scenario:  "You are lost on the way to the train station and ask a local for help.",
		Character: "a helpful passerby who knows the city well",
		Setting:   "a busy street corner downtown",
		MinLevel:  "A1",
	},
	{
		ID:        3,
		Title:     "Checking into a hotel",
		Scenario:  "You arrive at a hotel with a reservation, but there is a mix-up with your room.",
		Character: "a polite but overworked front-desk clerk",
		Setting:   "a hotel lobby late in the evening",
		MinLevel:  "A2",
	},
	{
		ID:        4,
		Title:     "Job interview",
		Scenario:  "You are interviewing for a position you really want and must talk about your experience.",
		Character: "a curious hiring manager who asks follow-up questions",
		Setting:   "a bright meeting room at a mid-sized company",
		MinLevel:  "B1",
	},
	{
		ID:        5,
		Title:     "Returning a faulty purchase",
		Scenario:  "The headphones you bought last week stopped working and you want a refund.",
		Character: "a skeptical customer-service agent",
		Setting:   "the returns counter of an electronics store",
		MinLevel:  "B1",
	},
	{
		ID:        6,
		Title:     "Apartment viewing",
		Scenario:  "You are viewing an apartment to rent and negotiating the terms of the lease.",
		Character: "a fast-talking real-estate agent",
		Setting:   "a fourth-floor apartment with a questionable view",
		MinLevel:  "B2",
	},
	{
		ID:        7,
		Title:     "Debating the news",
		Scenario:  "A recent headline has divided opinions and you argue your side over dinner.",
		Character: "an opinionated old friend who enjoys a good debate",
		Setting:   "a dinner table after the plates have been cleared",
		MinLevel:  "C1",
	},
}

var defaultTips = []model.Tip{
	{ID: 1, Text: "Short daily sessions beat long weekly ones — ten minutes a day adds up fast."},
	{ID: 2, Text: "Don't translate word by word; try to think in whole phrases."},
	{ID: 3, Text: "Mistakes are data. Read your corrections twice and move on."},
	{ID: 4, Text: "Read your messages out loud before sending them — your ear catches what your eye misses."},
	{ID: 5, Text: "Steal phrases from the tutor's replies and reuse them in your next message."},
	{ID: 6, Text: "When you learn a new word, use it in three different sentences the same day."},
	{ID: 7, Text: "Roleplay scenarios you'll actually face — ordering food sticks better than abstract drills."},
	{ID: 8, Text: "Plateaus are normal. Lower the difficulty for a week, then climb again."},
}
