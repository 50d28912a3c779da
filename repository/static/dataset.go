package static

import "github.com/fastygo/agrofocus/domain"

// Dataset bundles every payload the API serves.
type Dataset struct {
	Hello              domain.Hello
	Summary            domain.DashboardSummary
	SoilActions        []domain.SoilAction
	WeatherToday       domain.WeatherToday
	WeatherForecast    []domain.ForecastDay
	Fields             []domain.Field
	SoilSummary        domain.SoilSummary
	YieldTrends        domain.YieldTrends
	WaterUse           domain.WaterUse
	CropHealth         domain.CropHealth
	CropHealthSnapshot domain.CropHealthSnapshot
	DripStatus         domain.DripStatus
	SatelliteView      domain.SatelliteView
}

func floatPtr(v float64) *float64 {
	return &v
}

// DefaultDataset returns a fresh copy of the demo farm.
func DefaultDataset() Dataset {
	return Dataset{
		Hello: domain.Hello{Message: "AgroFocus backend is running ✅"},
		Summary: domain.DashboardSummary{
			TodayFocus:         "Soil moisture & water stress",
			RecommendedActions: 12,
			Alerts: []domain.Alert{
				{ID: 1, Type: "water", Text: "East Plot rice is below target moisture."},
				{ID: 2, Type: "pest", Text: "Check yellowing patches in South Plot maize."},
			},
			SoilMoistureAvg:           46,
			SoilMoistureChangePercent: 4,
			NDVIAnomalyPercent:        8.2,
		},
		SoilActions: []domain.SoilAction{
			{
				ID:       1,
				Field:    "East Plot - Rice",
				Priority: "High",
				Action:   "Schedule irrigation within the next 6 hours – soil moisture is below 30% and hot day ahead.",
			},
			{
				ID:       2,
				Field:    "South Plot - Maize",
				Priority: "Medium",
				Action:   "Check yellowing patches in lower half – possible N deficiency or waterlogging.",
			},
			{
				ID:       3,
				Field:    "North Plot - Wheat",
				Priority: "Low",
				Action:   "Good moisture and NDVI - keep current irrigation schedule and monitor for pest activity.",
			},
		},
		WeatherToday: domain.WeatherToday{
			Location:              "Farm HQ",
			TempC:                 29,
			FeelsLikeC:            31,
			Condition:             "Partly cloudy · Humid",
			WindKph:               8,
			HumidityPercent:       72,
			RainChancePercent:     40,
			ExpectedRainMm:        12,
			EtoMm:                 4.2,
			NetWaterNeedMm:        1.8,
			Sunrise:               "06:01",
			Sunset:                "18:27",
			LastUpdatedMinutesAgo: 10,
		},
		WeatherForecast: []domain.ForecastDay{
			{Day: "Today", TempC: 30, RainMm: 6, Icon: "🌧"},
			{Day: "D+1", TempC: 31, RainMm: 2, Icon: "🌥"},
			{Day: "D+2", TempC: 32, RainMm: 0, Icon: "☀"},
			{Day: "D+3", TempC: 29, RainMm: 10, Icon: "🌧"},
			{Day: "D+4", TempC: 28, RainMm: 4, Icon: "🌧"},
			{Day: "D+5", TempC: 30, RainMm: 1, Icon: "🌥"},
			{Day: "D+6", TempC: 31, RainMm: 0, Icon: "☀"},
		},
		Fields: []domain.Field{
			{ID: "north", Name: "Field 1 – North Plot", Crop: "Wheat", AreaAcres: 2.5, Status: "Healthy", MoisturePercent: 46, NDVI: 0.78, Risk: "Low"},
			{ID: "east", Name: "Field 2 – East Plot", Crop: "Rice", AreaAcres: 1.7, Status: "Needs irrigation", MoisturePercent: 32, NDVI: 0.69, Risk: "Medium"},
			{ID: "south", Name: "Field 3 – South Plot", Crop: "Maize", AreaAcres: 3.1, Status: "Watch patches", MoisturePercent: 38, NDVI: 0.65, Risk: "Medium"},
		},
		SoilSummary: domain.SoilSummary{
			Fields: []domain.SoilLabField{
				{Field: "North Plot", PH: 6.8, OrganicC: 0.72, N: 290, P: 24, K: 185},
				{Field: "East Plot", PH: 6.3, OrganicC: 0.58, N: 240, P: 18, K: 160},
				{Field: "South Plot", PH: 7.1, OrganicC: 0.65, N: 270, P: 20, K: 190},
			},
			SoilHealthScore: 78,
			Notes: []string{
				"Ideal pH for most crops: 6.5 – 7.2",
				"Organic carbon above 0.75% indicates very good soil health.",
			},
			Recommendations: []domain.SoilRecommendation{
				{
					Field:          "North Plot – Wheat (target 4.0 t/ha)",
					Recommendation: "Apply 80 kg N, 40 kg P₂O₅, 20 kg K₂O per ha split across 3 doses.",
					Tag:            "Balanced",
				},
				{
					Field:          "East Plot – Rice (target 4.2 t/ha)",
					Recommendation: "Increase P dose by 25% · apply at transplanting + tillering.",
					Tag:            "Adjust P",
				},
				{
					Field:          "South Plot – Maize (target 5.0 t/ha)",
					Recommendation: "Maintain current N & K plan · focus on organic matter additions (FYM/compost).",
					Tag:            "Build OC",
				},
			},
		},
		YieldTrends: domain.YieldTrends{
			Years:      []int{2022, 2023, 2024, 2025},
			OverallTph: []float64{3.3, 3.7, 4.0, 4.3},
			Crops: map[string][]float64{
				"wheat": {3.1, 3.4, 3.6, 3.9},
				"maize": {4.0, 4.2, 4.1, 4.4},
				"rice":  {3.5, 3.6, 3.8, 4.0},
			},
			Seasons: []domain.SeasonYield{
				{Season: "Kharif", Values: map[string]float64{"2023": 3.7, "2024": 3.9, "2025": 4.1}},
				{Season: "Rabi", Values: map[string]float64{"2023": 3.3, "2024": 3.5, "2025": 3.8}},
			},
		},
		WaterUse: domain.WaterUse{
			Fields: []domain.WaterUseField{
				{Field: "North Plot", Crop: "Wheat", IrrigationMm: 22, RainfallMm: 8, TotalMm: 30},
				{Field: "East Plot", Crop: "Rice", IrrigationMm: 35, RainfallMm: 10, TotalMm: 45},
				{Field: "South Plot", Crop: "Maize", IrrigationMm: 18, RainfallMm: 6, TotalMm: 24},
			},
			DailySeries: domain.WaterSeries{
				Labels:       []string{"D-6", "D-5", "D-4", "D-3", "D-2", "D-1", "Today"},
				IrrigationMm: []float64{10, 15, 20, 25, 22, 18, 19},
				RainfallMm:   []float64{2, 3, 4, 5, 3, 1, 2},
			},
			SourceSplit: []domain.WaterSource{
				{Source: "Borewell", SharePercent: 52, VolumeMl: 4.1, Comment: "High usage – monitor energy cost & groundwater level"},
				{Source: "Canal", SharePercent: 28, VolumeMl: 2.2, Comment: "Reliable supply this season"},
				{Source: "Rainwater / Pond", SharePercent: 20, VolumeMl: 1.6, Comment: "Scope to increase storage and reuse"},
			},
		},
		CropHealth: domain.CropHealth{
			NDVIAverage:       0.72,
			NDVIChangePercent: 3.5,
			Fields: []domain.CropHealthField{
				{Field: "North Plot", NDVI: 0.78, Status: "Healthy"},
				{Field: "East Plot", NDVI: 0.69, Status: "Mild stress"},
				{Field: "South Plot", NDVI: 0.65, Status: "Watch patches"},
			},
		},
		CropHealthSnapshot: domain.CropHealthSnapshot{
			NDVI:             domain.TextReading("0.82"),
			NDVITrend:        "+3% vs last week",
			LeafWetness:      "Moderate",
			LeafWetnessNote:  "Slight pest risk",
			ChlorophyllIndex: "High",
			ChlorophyllNote:  "Good photosynthesis activity",
		},
		DripStatus: domain.DripStatus{
			FlowRateLpm:  floatPtr(12.5),
			PressureBar:  floatPtr(1.8),
			PressureNote: "Optimal",
			Blockage:     "No issues",
			Uniformity:   "92% uniform",
		},
		SatelliteView: domain.SatelliteView{
			CloudCoveragePercent: floatPtr(12),
			CloudNote:            "Clear sky",
			HeatZones:            "Moderate hotspot in east field",
			WaterStressZones:     "2 patches require irrigation",
			NDVIHotspots:         "Low-vigor zone at north corner",
		},
	}
}
