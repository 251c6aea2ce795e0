package restaurant

// demoRestaurant is the shape of a built-in demo record.
type demoRestaurant struct {
	name        string
	address     string
	city        string
	cuisine     []string
	dishes      []string
	takeaway    bool
	priceLevel  int
	tags        []string
	photoURL    string
	ratingAvg   float64
	ratingCount int
}

// demoRestaurants back the seed operation for demos and local development.
var demoRestaurants = []demoRestaurant{
	{
		name:        "GraffiTaco",
		address:     "12 Brick Lane",
		city:        "London",
		cuisine:     []string{"mexican", "street"},
		dishes:      []string{"al pastor tacos", "elote"},
		takeaway:    true,
		priceLevel:  2,
		tags:        []string{"late-night", "colourful"},
		photoURL:    "https://images.unsplash.com/photo-1601050690597-9bff8f1f1a5d",
		ratingAvg:   4.6,
		ratingCount: 128,
	},
	{
		name:        "Neon Noodles",
		address:     "88 Market St",
		city:        "Manchester",
		cuisine:     []string{"asian", "thai"},
		dishes:      []string{"pad thai", "green curry"},
		takeaway:    true,
		priceLevel:  1,
		tags:        []string{"vegan-options", "spicy"},
		photoURL:    "https://images.unsplash.com/photo-1544025162-d76694265947",
		ratingAvg:   4.3,
		ratingCount: 93,
	},
	{
		name:        "Ramen Graffiti",
		address:     "5 Shoreditch High St",
		city:        "London",
		cuisine:     []string{"japanese", "ramen"},
		dishes:      []string{"tonkotsu", "spicy miso"},
		takeaway:    true,
		priceLevel:  3,
		tags:        []string{"cozy", "neo-tokyo"},
		photoURL:    "https://images.unsplash.com/photo-1543352634-78b3b2fd0de7",
		ratingAvg:   4.8,
		ratingCount: 210,
	},
}
