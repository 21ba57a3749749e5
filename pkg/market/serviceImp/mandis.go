package serviceImp

import "cropadvisor/pkg/market/service"

var defaultMandis = []service.Mandi{
	{Name: "Punjab Mandi", State: "Punjab", District: "Ludhiana", Contact: "+91-9876543210", Timings: "6:00 AM - 6:00 PM", Specialties: []string{"wheat", "rice", "cotton"}},
	{Name: "Bathinda Mandi", State: "Punjab", District: "Bathinda", Contact: "+91-9876500011", Timings: "6:00 AM - 5:00 PM", Specialties: []string{"cotton", "wheat"}},
	{Name: "Haryana Mandi", State: "Haryana", District: "Karnal", Contact: "+91-9812300022", Timings: "7:00 AM - 6:00 PM", Specialties: []string{"rice", "wheat"}},
	{Name: "Karnal Mandi", State: "Haryana", District: "Karnal", Contact: "+91-9812300033", Timings: "7:00 AM - 5:00 PM", Specialties: []string{"maize", "rice"}},
	{Name: "Bharatpur Mandi", State: "Rajasthan", District: "Bharatpur", Contact: "+91-9414000044", Timings: "8:00 AM - 6:00 PM", Specialties: []string{"mustard", "chickpea"}},
	{Name: "Indore Mandi", State: "Madhya Pradesh", District: "Indore", Contact: "+91-9425000055", Timings: "8:00 AM - 7:00 PM", Specialties: []string{"chickpea", "wheat", "maize"}},
	{Name: "Muzaffarnagar Mandi", State: "Uttar Pradesh", District: "Muzaffarnagar", Contact: "+91-9412000066", Timings: "6:00 AM - 6:00 PM", Specialties: []string{"sugarcane", "wheat"}},
}
