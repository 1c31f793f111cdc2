package main

import (
	"context"
	"log"

	"github.com/snapmenu/backend/config"
	"github.com/snapmenu/backend/internal/database"
	"github.com/snapmenu/backend/internal/service"
)

// Seeds a demo catalog of recipes from different cuisines so search has
// something to find on a fresh database.
var seedRecipes = []service.Submission{
	{
		Title:        "Chicken Kabsa",
		Description:  "Fragrant Saudi rice dish with spiced chicken.",
		Ingredients:  list("basmati rice", "chicken", "tomatoes", "kabsa spice mix", "onions"),
		Instructions: list("Brown the chicken with onions", "Add tomatoes and spices", "Stir in rice and simmer until tender"),
		CookingTime:  "60 minutes",
		Difficulty:   "Medium",
		DietaryTags:  []string{"hearty"},
	},
	{
		Title:        "Lamb Mandi",
		Description:  "Slow-cooked Yemeni lamb over smoky rice.",
		Ingredients:  list("basmati rice", "lamb shoulder", "mandi spice mix", "dried lime"),
		Instructions: list("Season the lamb and roast low and slow", "Steam rice in the drippings", "Serve lamb over the rice"),
		CookingTime:  "3 hours",
		Difficulty:   "Hard",
		DietaryTags:  []string{"hearty"},
	},
	{
		Title:        "Vegetable Biryani",
		Description:  "Layered Indian rice with caramelized onions and vegetables.",
		Ingredients:  list("basmati rice", "mixed vegetables", "yogurt", "biryani masala", "saffron"),
		Instructions: list("Parboil the rice", "Cook vegetables in spiced yogurt", "Layer and steam on low heat"),
		CookingTime:  "75 minutes",
		Difficulty:   "Medium",
		DietaryTags:  []string{"vegetarian"},
	},
	{
		Title:        "Street Tacos",
		Description:  "Quick Mexican tacos with charred corn tortillas.",
		Ingredients:  list("corn tortillas", "beef", "cilantro", "onions", "lime"),
		Instructions: list("Sear the beef", "Warm the tortillas", "Top with cilantro, onion and lime"),
		CookingTime:  "20 minutes",
		Difficulty:   "Easy",
		DietaryTags:  []string{"quick & easy"},
	},
	{
		Title:        "Pasta al Pomodoro",
		Description:  "Simple Italian pasta in a fresh tomato sauce.",
		Ingredients:  list("spaghetti", "tomatoes", "garlic", "basil", "olive oil"),
		Instructions: list("Simmer tomatoes with garlic", "Boil pasta until al dente", "Toss together with basil"),
		CookingTime:  "25 minutes",
		Difficulty:   "Easy",
		DietaryTags:  []string{"vegetarian", "quick & easy"},
	},
	{
		Title:        "Lebanese Fattoush",
		Description:  "Crisp salad with toasted flatbread and sumac.",
		Ingredients:  list("flatbread", "tomatoes", "cucumbers", "sumac", "olive oil", "lemon"),
		Instructions: list("Toast the flatbread", "Chop the vegetables", "Dress with sumac, lemon and oil"),
		CookingTime:  "15 minutes",
		Difficulty:   "Easy",
		DietaryTags:  []string{"vegan", "healthy"},
	},
	{
		Title:        "Falafel Plate",
		Description:  "Crunchy chickpea fritters with tahini.",
		Ingredients:  list("chickpeas", "parsley", "garlic", "cumin", "tahini"),
		Instructions: list("Blend chickpeas with herbs and spices", "Shape and fry until golden", "Serve with tahini sauce"),
		CookingTime:  "40 minutes",
		Difficulty:   "Medium",
		DietaryTags:  []string{"vegan"},
	},
	{
		Title:        "Shakshuka",
		Description:  "Eggs poached in a spiced pepper and tomato sauce.",
		Ingredients:  list("eggs", "tomatoes", "bell peppers", "paprika", "onions"),
		Instructions: list("Soften peppers and onions", "Simmer tomatoes into a sauce", "Poach the eggs in the sauce"),
		CookingTime:  "30 minutes",
		Difficulty:   "Easy",
		DietaryTags:  []string{"vegetarian", "gluten-free"},
	},
}

func list(items ...string) service.TextOrList {
	return service.TextOrList{Items: items, IsList: true}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ingest := service.NewIngestService(db, nil, nil)
	ctx := context.Background()

	for _, sub := range seedRecipes {
		id, err := ingest.Ingest(ctx, sub)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", sub.Title, err)
		}
		log.Printf("Seeded %q (id=%d)", sub.Title, id)
	}

	log.Printf("Seeded %d recipes", len(seedRecipes))
}
