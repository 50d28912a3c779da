package domain

import "strings"

// FocusArea is one of the fixed dashboard emphases.
type FocusArea string

const (
	FocusSoil   FocusArea = "soil"
	FocusWater  FocusArea = "water"
	FocusCrop   FocusArea = "crop"
	FocusMarket FocusArea = "market"
)

// FocusAreas lists the areas in display order.
var FocusAreas = []FocusArea{FocusSoil, FocusWater, FocusCrop, FocusMarket}

// KPIs are the four headline figures that shift with the focus area.
type KPIs struct {
	Moisture   string `json:"moisture"`
	Nitrogen   string `json:"nitrogen"`
	Irrigation string `json:"irrigation"`
	Yield      string `json:"yield"`
}

// FocusDisplay is the static reference record behind a focus area.
type FocusDisplay struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MetricTitle string `json:"metricTitle"`
	MetricValue string `json:"metricValue"`
	KPIs        KPIs   `json:"kpis"`
}

var focusTable = map[FocusArea]FocusDisplay{
	FocusSoil: {
		Label:       "Soil",
		Title:       "Today's Focus: Soil & Irrigation",
		Description: "AI analyzes soil health and nutrient balance.",
		MetricTitle: "Average soil moisture",
		MetricValue: "46%",
		KPIs:        KPIs{Moisture: "46%", Nitrogen: "Slightly low", Irrigation: "23 mm", Yield: "3.8 t/ha"},
	},
	FocusWater: {
		Label:       "Water",
		Title:       "Today's Focus: Water Stress",
		Description: "Monitoring irrigation efficiency and water stress.",
		MetricTitle: "Water stress index",
		MetricValue: "Moderate",
		KPIs:        KPIs{Moisture: "39%", Nitrogen: "OK", Irrigation: "18 mm", Yield: "3.5 t/ha"},
	},
	FocusCrop: {
		Label:       "Crop Health",
		Title:       "Today's Focus: Crop Health",
		Description: "Tracking crop vigor and NDVI changes.",
		MetricTitle: "Crop health score",
		MetricValue: "87%",
		KPIs:        KPIs{Moisture: "52%", Nitrogen: "Medium", Irrigation: "20 mm", Yield: "4.0 t/ha (est.)"},
	},
	FocusMarket: {
		Label:       "Market",
		Title:       "Today's Focus: Market Prices",
		Description: "Analyzing commodity price movements.",
		MetricTitle: "Market trend",
		MetricValue: "Upward ↑",
		KPIs:        KPIs{Moisture: "48%", Nitrogen: "Balanced", Irrigation: "21 mm", Yield: "3.9 t/ha"},
	},
}

// ParseFocusArea normalizes user input into a known area.
func ParseFocusArea(raw string) (FocusArea, error) {
	area := FocusArea(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := focusTable[area]; !ok {
		return "", ErrUnknownFocusArea
	}
	return area, nil
}

// Display returns the reference record for the area.
func (a FocusArea) Display() (FocusDisplay, bool) {
	d, ok := focusTable[a]
	return d, ok
}
