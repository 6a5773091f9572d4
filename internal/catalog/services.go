package catalog

// services is the service landing page table. Main services are the primary
// booking products; the rest are supporting offers.
var services = []Service{
	{
		Slug:        "private-transfer",
		Name:        "Private Transfer",
		Type:        "Airport Shuttle",
		Description: "Dedicated vehicle with a licensed driver from Antalya Airport to any address on the Turkish Riviera.",
		Main:        true,
		PriceEUR:    20,
		Image:       "/assets/img/services/private.jpg",
		Features:    []string{"Meet and greet", "Flight tracking", "Free child seat", "Free cancellation"},
		FAQs: []FAQ{
			{Question: "Where does the driver meet me?", Answer: "At the arrivals hall exit, holding a sign with your name."},
		},
		LastMod: "2025-07-01",
	},
	{
		Slug:        "vip-transfer",
		Name:        "VIP Transfer",
		Type:        "Limousine Service",
		Description: "Business-class Mercedes Vito or V-Class with refreshments, Wi-Fi and priority pickup.",
		Main:        true,
		PriceEUR:    55,
		Image:       "/assets/img/services/vip.jpg",
		Features:    []string{"Business-class vehicle", "Refreshments on board", "Priority pickup"},
		LastMod:     "2025-07-01",
	},
	{
		Slug:        "group-transfer",
		Name:        "Group Transfer",
		Type:        "Airport Shuttle",
		Description: "Minibus and midibus transfers for groups of up to 30 passengers with luggage trailers on request.",
		Main:        false,
		PriceEUR:    80,
		Image:       "/assets/img/services/group.jpg",
		LastMod:     "2025-05-12",
	},
	{
		Slug:        "hourly-hire",
		Name:        "Hourly Chauffeur Hire",
		Type:        "Chauffeur Service",
		Description: "Car with driver by the hour for excursions, shopping trips and business days in Antalya.",
		Main:        false,
		PriceEUR:    25,
		Image:       "/assets/img/services/hourly.jpg",
		LastMod:     "2025-05-12",
	},
}

// ServiceBySlug looks up one service record.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
