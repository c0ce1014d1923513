package adapter

import "shark-tracker/internal/features/sharks/domain"

const greatWhite = "Great White Shark"

func ptr(s string) *string { return &s }

// MockSharks returns the built-in OCEARCH shark profiles.
func MockSharks() []domain.Shark {
	return []domain.Shark{
		{
			ID:           "mary_lee",
			Name:         "Mary Lee",
			Species:      greatWhite,
			Gender:       "Female",
			Stage:        "Adult",
			Length:       "16 ft",
			Weight:       "3,456 lbs",
			TagLocation:  "Cape Cod, MA",
			TagDate:      "2012-09-17",
			Description:  "Famous mature female great white shark. Mary Lee was one of OCEARCH's most tracked sharks and helped scientists understand migration patterns.",
			ProfilePhoto: "https://www.ocearch.org/images/sharks/mary-lee.jpg",
			Tracker:      true,
		},
		{
			ID:           "nukumi",
			Name:         "Nukumi",
			Species:      greatWhite,
			Gender:       "Female",
			Stage:        "Adult",
			Length:       "17.2 ft",
			Weight:       "3,541 lbs",
			TagLocation:  "Nova Scotia, Canada",
			TagDate:      "2019-10-02",
			Description:  "One of the largest great whites ever tagged by OCEARCH. Named after a legendary Mi'kmaq grandmother figure.",
			ProfilePhoto: "https://www.ocearch.org/images/sharks/nukumi.jpg",
			Tracker:      true,
		},
		{
			ID:           "unamaki",
			Name:         "Unama'ki",
			Species:      greatWhite,
			Gender:       "Male",
			Stage:        "Adult",
			Length:       "15.3 ft",
			Weight:       "2,076 lbs",
			TagLocation:  "Nova Scotia, Canada",
			TagDate:      "2019-10-05",
			Description:  "Large adult male great white shark named after the Mi'kmaq word for Cape Breton.",
			ProfilePhoto: "https://www.ocearch.org/images/sharks/unamaki.jpg",
			Tracker:      true,
		},
		{
			ID:           "ironbound",
			Name:         "Ironbound",
			Species:      greatWhite,
			Gender:       "Male",
			Stage:        "Adult",
			Length:       "12.1 ft",
			Weight:       "998 lbs",
			TagLocation:  "Montauk, NY",
			TagDate:      "2019-10-03",
			Description:  "Named after West Ironbound Island near Lunenburg, Nova Scotia. Known for frequent coastal appearances.",
			ProfilePhoto: "https://www.ocearch.org/images/sharks/ironbound.jpg",
			Tracker:      true,
		},
		{
			ID:           "savannah",
			Name:         "Savannah",
			Species:      greatWhite,
			Gender:       "Female",
			Stage:        "Sub-Adult",
			Length:       "14.3 ft",
			Weight:       "1,668 lbs",
			TagLocation:  "Savannah, GA",
			TagDate:      "2020-12-05",
			Description:  "Young female great white showing typical coastal migration patterns along the Eastern Seaboard.",
			ProfilePhoto: "https://www.ocearch.org/images/sharks/savannah.jpg",
			Tracker:      true,
		},
	}
}

// MockPings returns one recent ping per built-in shark, along known migration routes.
func MockPings() []domain.Ping {
	return []domain.Ping{
		// Off Cape Cod
		{
			ID: "ping_mary_1", SharkID: "mary_lee", Datetime: "2024-07-16 08:15:00",
			Latitude: 41.6688, Longitude: -70.2962, Depth: ptr("18 m"), Temperature: ptr("16°C"),
			Name: "Mary Lee", Species: greatWhite, ProfilePhoto: "https://www.ocearch.org/images/sharks/mary-lee.jpg",
		},
		// Off Nova Scotia
		{
			ID: "ping_nukumi_1", SharkID: "nukumi", Datetime: "2024-07-16 09:42:00",
			Latitude: 44.2619, Longitude: -63.7443, Depth: ptr("25 m"), Temperature: ptr("14°C"),
			Name: "Nukumi", Species: greatWhite, ProfilePhoto: "https://www.ocearch.org/images/sharks/nukumi.jpg",
		},
		// Moving south
		{
			ID: "ping_unamaki_1", SharkID: "unamaki", Datetime: "2024-07-16 11:20:00",
			Latitude: 42.3584, Longitude: -71.0598, Depth: ptr("12 m"), Temperature: ptr("18°C"),
			Name: "Unama'ki", Species: greatWhite, ProfilePhoto: "https://www.ocearch.org/images/sharks/unamaki.jpg",
		},
		// Near Long Island
		{
			ID: "ping_ironbound_1", SharkID: "ironbound", Datetime: "2024-07-16 13:05:00",
			Latitude: 40.7589, Longitude: -73.9851, Depth: ptr("8 m"), Temperature: ptr("20°C"),
			Name: "Ironbound", Species: greatWhite, ProfilePhoto: "https://www.ocearch.org/images/sharks/ironbound.jpg",
		},
		// Off the Georgia coast
		{
			ID: "ping_savannah_1", SharkID: "savannah", Datetime: "2024-07-16 14:30:00",
			Latitude: 32.0835, Longitude: -80.9007, Depth: ptr("15 m"), Temperature: ptr("22°C"),
			Name: "Savannah", Species: greatWhite, ProfilePhoto: "https://www.ocearch.org/images/sharks/savannah.jpg",
		},
	}
}
