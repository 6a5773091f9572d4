package catalog

// cities is the destination table. Distances and durations are from the
// Antalya Airport (AYT) international terminal.
var cities = []City{
	{
		Slug:        "kemer-transfer",
		Name:        "Kemer",
		Description: "Private transfer from Antalya Airport to Kemer hotels and marina. Mountain coastal road, fixed price, no waiting.",
		DistanceKM:  55,
		DurationMin: 60,
		PriceEUR:    35,
		Image:       "/assets/img/cities/kemer.jpg",
		Routes: []Route{
			{From: "Antalya Airport", To: "Kemer Center", PriceEUR: 35},
			{From: "Antalya Airport", To: "Goynuk", PriceEUR: 32},
			{From: "Antalya Airport", To: "Beldibi", PriceEUR: 30},
		},
		FAQs: []FAQ{
			{Question: "How long is the transfer from Antalya Airport to Kemer?", Answer: "About 60 minutes depending on traffic, covering roughly 55 km."},
			{Question: "Is the Kemer transfer price per person or per vehicle?", Answer: "Per vehicle. The fixed price covers up to the seat capacity of the car you book."},
		},
		LastMod: "2025-07-14",
	},
	{
		Slug:        "belek-transfer",
		Name:        "Belek",
		Description: "Door-to-door private transfer from Antalya Airport to Belek golf resorts.",
		DistanceKM:  35,
		DurationMin: 35,
		PriceEUR:    30,
		Image:       "/assets/img/cities/belek.jpg",
		Routes: []Route{
			{From: "Antalya Airport", To: "Belek Center", PriceEUR: 30},
			{From: "Antalya Airport", To: "Kadriye", PriceEUR: 28},
		},
		FAQs: []FAQ{
			{Question: "Do you track flight delays for Belek transfers?", Answer: "Yes. Your driver follows the flight and meets you whenever you land, at no extra charge."},
		},
		LastMod: "2025-07-14",
	},
	{
		Slug:        "side-transfer",
		Name:        "Side",
		Description: "Private Antalya Airport transfer to Side and Kumkoy with meet and greet at arrivals.",
		DistanceKM:  65,
		DurationMin: 65,
		PriceEUR:    40,
		Image:       "/assets/img/cities/side.jpg",
		Routes: []Route{
			{From: "Antalya Airport", To: "Side Old Town", PriceEUR: 40},
			{From: "Antalya Airport", To: "Kumkoy", PriceEUR: 40},
		},
		LastMod: "2025-06-02",
	},
	{
		Slug:        "alanya-transfer",
		Name:        "Alanya",
		Description: "Long-distance private transfer from Antalya Airport to Alanya, Mahmutlar and Oba.",
		DistanceKM:  125,
		DurationMin: 120,
		PriceEUR:    65,
		Image:       "/assets/img/cities/alanya.jpg",
		Routes: []Route{
			{From: "Antalya Airport", To: "Alanya Center", PriceEUR: 65},
			{From: "Antalya Airport", To: "Mahmutlar", PriceEUR: 70},
		},
		LastMod: "2025-06-02",
	},
	{
		Slug:        "lara-transfer",
		Name:        "Lara",
		Description: "Quick private transfer from Antalya Airport to the Lara beach hotel strip.",
		DistanceKM:  15,
		DurationMin: 20,
		PriceEUR:    20,
		Image:       "/assets/img/cities/lara.jpg",
		LastMod:     "2025-05-20",
	},
}

// CityBySlug looks up one city record.
func CityBySlug(slug string) (City, bool) {
	for _, c := range cities {
		if c.Slug == slug {
			return c, true
		}
	}
	return City{}, false
}
