package agronomy

var defaultCrops = []CropProfile{
	{Key: "rice", Name: "Rice", Category: "Cereal", Season: Kharif, Water: WaterHigh, MaturityMinDays: 120, MaturityMaxDays: 150},
	{Key: "wheat", Name: "Wheat", Category: "Cereal", Season: Rabi, Water: WaterMedium, MaturityMinDays: 110, MaturityMaxDays: 130},
	{Key: "maize", Name: "Maize", Category: "Cereal", Season: Both, Water: WaterMedium, MaturityMinDays: 90, MaturityMaxDays: 110},
	{Key: "cotton", Name: "Cotton", Category: "Cash Crop", Season: Kharif, Water: WaterMedium, MaturityMinDays: 150, MaturityMaxDays: 180},
	{Key: "sugarcane", Name: "Sugarcane", Category: "Cash Crop", Season: Perennial, Water: WaterVeryHigh, MaturityMinDays: 300, MaturityMaxDays: 365},
	{Key: "mustard", Name: "Mustard", Category: "Oilseed", Season: Rabi, Water: WaterLow, MaturityMinDays: 90, MaturityMaxDays: 110},
	{Key: "chickpea", Name: "Chickpea", Category: "Pulse", Season: Rabi, Water: WaterLow, MaturityMinDays: 95, MaturityMaxDays: 105},
}

var defaultPests = []PestProfile{
	{
		Key:           "aphids",
		Name:          "Aphids",
		AffectedCrops: []string{"wheat", "mustard", "cotton"},
		Symptoms:      "Curled yellowing leaves, sticky honeydew, sooty mould on foliage",
		Treatment: []Treatment{
			{Method: "Neem Oil Spray", Dosage: "2ml per liter of water", Frequency: "Every 7 days for 3 weeks"},
			{Method: "Insecticidal Soap", Dosage: "5ml per liter of water", Frequency: "Twice a week"},
		},
		Prevention: []string{"Regular monitoring of crop", "Maintain proper field hygiene", "Use yellow sticky traps"},
	},
	{
		Key:           "bollworm",
		Name:          "Bollworm",
		AffectedCrops: []string{"cotton", "chickpea", "maize"},
		Symptoms:      "Holes in leaves, bored and damaged bolls, frass near entry holes",
		Treatment: []Treatment{
			{Method: "Bt Spray", Dosage: "1g per liter of water", Frequency: "Every 10 days during flowering"},
			{Method: "Pheromone Traps", Dosage: "5 traps per acre", Frequency: "Replace lures every 3 weeks"},
		},
		Prevention: []string{"Deep summer ploughing", "Destroy crop residue after harvest", "Intercrop with marigold as trap crop"},
	},
	{
		Key:           "stem_borer",
		Name:          "Stem Borer",
		AffectedCrops: []string{"rice", "maize", "sugarcane"},
		Symptoms:      "Dead hearts in young plants, white empty panicles at heading",
		Treatment: []Treatment{
			{Method: "Cartap Hydrochloride Granules", Dosage: "10 kg per acre", Frequency: "Once at 30 days after transplanting"},
			{Method: "Trichogramma Egg Parasitoid", Dosage: "20,000 eggs per acre", Frequency: "Weekly for 4 weeks"},
		},
		Prevention: []string{"Clip seedling tips before transplanting", "Remove stubble after harvest", "Avoid excess nitrogen"},
	},
}

var illustrativeDates = []string{"2025-01-01", "2025-01-05", "2025-01-10", "2025-01-13"}

func history(prices ...float64) []PricePoint {
	out := make([]PricePoint, len(prices))
	for i, p := range prices {
		out[i] = PricePoint{Date: illustrativeDates[i], Price: p}
	}
	return out
}

var defaultPrices = []PriceQuote{
	{Crop: "wheat", Variety: "HD-2967", Price: 2150, Unit: "per quintal", Market: "Punjab Mandi", Date: "2025-01-13", Change: 50, ChangePct: 2.38, Trend: TrendUp, History: history(2000, 2050, 2100, 2150)},
	{Crop: "rice", Variety: "Basmati", Price: 3500, Unit: "per quintal", Market: "Haryana Mandi", Date: "2025-01-13", Change: 0, ChangePct: 0, Trend: TrendStable, History: history(3500, 3480, 3510, 3500)},
	{Crop: "maize", Variety: "Hybrid", Price: 1950, Unit: "per quintal", Market: "Karnal Mandi", Date: "2025-01-13", Change: -30, ChangePct: -1.52, Trend: TrendDown, History: history(2010, 1990, 1980, 1950)},
	{Crop: "cotton", Variety: "Bt Cotton", Price: 6800, Unit: "per quintal", Market: "Bathinda Mandi", Date: "2025-01-13", Change: 120, ChangePct: 1.80, Trend: TrendUp, History: history(6550, 6620, 6680, 6800)},
	{Crop: "sugarcane", Variety: "Co-0238", Price: 391, Unit: "per quintal", Market: "Ludhiana Mandi", Date: "2025-01-13", Change: 0, ChangePct: 0, Trend: TrendStable, History: history(391, 391, 391, 391)},
	{Crop: "mustard", Variety: "Pusa Bold", Price: 5650, Unit: "per quintal", Market: "Bharatpur Mandi", Date: "2025-01-13", Change: 75, ChangePct: 1.34, Trend: TrendUp, History: history(5500, 5560, 5575, 5650)},
	{Crop: "chickpea", Variety: "Desi", Price: 5440, Unit: "per quintal", Market: "Indore Mandi", Date: "2025-01-13", Change: -60, ChangePct: -1.09, Trend: TrendDown, History: history(5560, 5520, 5500, 5440)},
}
