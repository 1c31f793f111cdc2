package service

// RecipeTemplate is an in-memory canned recipe used by the generation
// service. Templates only become rows once an analysis call persists them.
type RecipeTemplate struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CookingTime  string   `json:"cooking_time"`
	Difficulty   string   `json:"difficulty"`
	DietaryTags  []string `json:"dietary_tags"`
	Instructions []string `json:"instructions"`
}

// recipeCatalog is the fixed set of templates every analysis call draws
// from. Exactly three, matching the "3 unique recipe ideas" promise.
var recipeCatalog = []RecipeTemplate{
	{
		Title:       "Mediterranean Veggie Bowl",
		Description: "A fresh and healthy bowl packed with Mediterranean flavors and colorful vegetables.",
		CookingTime: "25 minutes",
		Difficulty:  "Easy",
		DietaryTags: []string{"vegetarian", "healthy", "gluten-free"},
		Instructions: []string{
			"Wash and chop all fresh vegetables into bite-sized pieces",
			"Heat olive oil in a large pan over medium heat",
			"Sauté the vegetables until tender but still crisp",
			"Season with herbs, salt, and pepper to taste",
			"Arrange in a bowl and drizzle with olive oil",
			"Garnish with fresh herbs and serve immediately",
		},
	},
	{
		Title:       "Quick Stir-Fry Delight",
		Description: "A fast and flavorful stir-fry that makes the most of your fresh ingredients.",
		CookingTime: "15 minutes",
		Difficulty:  "Easy",
		DietaryTags: []string{"quick & easy", "healthy"},
		Instructions: []string{
			"Prepare all ingredients by washing and chopping",
			"Heat oil in a wok or large skillet over high heat",
			"Add firmer vegetables first, then softer ones",
			"Stir-fry for 3-5 minutes until vegetables are crisp-tender",
			"Add seasonings and sauce of choice",
			"Serve hot over rice or noodles",
		},
	},
	{
		Title:       "Fresh Garden Salad",
		Description: "A crisp and refreshing salad showcasing the natural flavors of fresh ingredients.",
		CookingTime: "10 minutes",
		Difficulty:  "Easy",
		DietaryTags: []string{"raw", "healthy", "vegan"},
		Instructions: []string{
			"Thoroughly wash all leafy greens and vegetables",
			"Tear or chop greens into bite-sized pieces",
			"Slice or dice other vegetables as desired",
			"Combine all ingredients in a large salad bowl",
			"Prepare a simple vinaigrette with oil, vinegar, and seasonings",
			"Toss with dressing just before serving",
		},
	},
}

// ingredientVocabulary is the fixed pool the mock analysis picks from.
// Selection is random per call and not derived from the photo payload.
var ingredientVocabulary = []string{
	"Fresh tomatoes", "Leafy greens", "Bell peppers", "Onions", "Carrots",
	"Cucumbers", "Herbs", "Olive oil", "Garlic", "Lemon",
}
