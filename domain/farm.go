package domain

import "strings"

// Hello is the liveness banner of the data provider.
type Hello struct {
	Message string `json:"message"`
}

type Alert struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Keywords is the lowercase text the search box filters alerts against.
func (a Alert) Keywords() string {
	return strings.ToLower(a.Type + " " + a.Text)
}

type DashboardSummary struct {
	TodayFocus                string  `json:"todayFocus"`
	RecommendedActions        int     `json:"recommendedActions"`
	Alerts                    []Alert `json:"alerts"`
	SoilMoistureAvg           float64 `json:"soilMoistureAvg"`
	SoilMoistureChangePercent float64 `json:"soilMoistureChangePercent"`
	NDVIAnomalyPercent        float64 `json:"ndviAnomalyPercent"`
}

func (s *DashboardSummary) Empty() bool {
	return s == nil || (s.TodayFocus == "" && s.RecommendedActions == 0 && len(s.Alerts) == 0)
}

type SoilAction struct {
	ID       int    `json:"id"`
	Field    string `json:"field"`
	Priority string `json:"priority"`
	Action   string `json:"action"`
}

type WeatherToday struct {
	Location              string  `json:"location"`
	TempC                 float64 `json:"tempC"`
	FeelsLikeC            float64 `json:"feelsLikeC"`
	Condition             string  `json:"condition"`
	WindKph               float64 `json:"windKph"`
	HumidityPercent       float64 `json:"humidityPercent"`
	RainChancePercent     float64 `json:"rainChancePercent"`
	ExpectedRainMm        float64 `json:"expectedRainMm"`
	EtoMm                 float64 `json:"etoMm"`
	NetWaterNeedMm        float64 `json:"netWaterNeedMm"`
	Sunrise               string  `json:"sunrise"`
	Sunset                string  `json:"sunset"`
	LastUpdatedMinutesAgo int     `json:"lastUpdatedMinutesAgo"`
}

type ForecastDay struct {
	Day    string  `json:"day"`
	TempC  float64 `json:"tempC"`
	RainMm float64 `json:"rainMm"`
	Icon   string  `json:"icon"`
}

type Field struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Crop            string  `json:"crop"`
	AreaAcres       float64 `json:"areaAcres"`
	Status          string  `json:"status"`
	MoisturePercent float64 `json:"moisturePercent"`
	NDVI            float64 `json:"ndvi"`
	Risk            string  `json:"risk"`
}

// MapView is where the field map centers when a field is picked.
type MapView struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

var fieldMapViews = map[string]MapView{
	"north": {Lat: 19.5, Lng: 75.5, Zoom: 7},
	"east":  {Lat: 22.5, Lng: 88.5, Zoom: 7},
	"south": {Lat: 15.3, Lng: 75.7, Zoom: 7},
}

// DefaultMapView is the country-level view shown before any field is picked.
var DefaultMapView = MapView{Lat: 20.5937, Lng: 78.9629, Zoom: 5}

// MapViewFor returns the map center for a field id.
func MapViewFor(fieldID string) (MapView, bool) {
	v, ok := fieldMapViews[fieldID]
	return v, ok
}

type SoilLabField struct {
	Field    string  `json:"field"`
	PH       float64 `json:"pH"`
	OrganicC float64 `json:"organicC"`
	N        float64 `json:"N"`
	P        float64 `json:"P"`
	K        float64 `json:"K"`
}

type SoilRecommendation struct {
	Field          string `json:"field"`
	Recommendation string `json:"recommendation"`
	Tag            string `json:"tag"`
}

type SoilSummary struct {
	Fields          []SoilLabField       `json:"fields"`
	SoilHealthScore int                  `json:"soilHealthScore"`
	Notes           []string             `json:"notes"`
	Recommendations []SoilRecommendation `json:"recommendations"`
}

type SeasonYield struct {
	Season string             `json:"season"`
	Values map[string]float64 `json:"values"`
}

type YieldTrends struct {
	Years      []int                `json:"years"`
	OverallTph []float64            `json:"overallTph"`
	Crops      map[string][]float64 `json:"crops"`
	Seasons    []SeasonYield        `json:"seasons"`
}

type WaterUseField struct {
	Field        string  `json:"field"`
	Crop         string  `json:"crop"`
	IrrigationMm float64 `json:"irrigationMm"`
	RainfallMm   float64 `json:"rainfallMm"`
	TotalMm      float64 `json:"totalMm"`
}

type WaterSeries struct {
	Labels       []string  `json:"labels"`
	IrrigationMm []float64 `json:"irrigationMm"`
	RainfallMm   []float64 `json:"rainfallMm"`
}

type WaterSource struct {
	Source       string  `json:"source"`
	SharePercent float64 `json:"sharePercent"`
	VolumeMl     float64 `json:"volumeMl"`
	Comment      string  `json:"comment"`
}

type WaterUse struct {
	Fields      []WaterUseField `json:"fields"`
	DailySeries WaterSeries     `json:"dailySeries"`
	SourceSplit []WaterSource   `json:"sourceSplit"`
}

type CropHealthField struct {
	Field  string  `json:"field"`
	NDVI   float64 `json:"ndvi"`
	Status string  `json:"status"`
}

type CropHealth struct {
	NDVIAverage       float64           `json:"ndviAverage"`
	NDVIChangePercent float64           `json:"ndviChangePercent"`
	Fields            []CropHealthField `json:"fields"`
}

type CropHealthSnapshot struct {
	NDVI             Reading `json:"ndvi"`
	NDVITrend        string  `json:"ndviTrend"`
	LeafWetness      string  `json:"leafWetness"`
	LeafWetnessNote  string  `json:"leafWetnessNote"`
	ChlorophyllIndex string  `json:"chlorophyllIndex"`
	ChlorophyllNote  string  `json:"chlorophyllNote"`
}

func (s *CropHealthSnapshot) Empty() bool {
	return s == nil || (s.NDVI.IsZero() && s.NDVITrend == "" && s.LeafWetness == "" && s.ChlorophyllIndex == "")
}

type DripStatus struct {
	FlowRateLpm  *float64 `json:"flowRateLpm"`
	PressureBar  *float64 `json:"pressureBar"`
	PressureNote string   `json:"pressureNote"`
	Blockage     string   `json:"blockage"`
	Uniformity   string   `json:"uniformity"`
}

func (s *DripStatus) Empty() bool {
	return s == nil || (s.FlowRateLpm == nil && s.PressureBar == nil && s.Blockage == "" && s.Uniformity == "")
}

type SatelliteView struct {
	CloudCoveragePercent *float64 `json:"cloudCoveragePercent"`
	CloudNote            string   `json:"cloudNote"`
	HeatZones            string   `json:"heatZones"`
	WaterStressZones     string   `json:"waterStressZones"`
	NDVIHotspots         string   `json:"ndviHotspots"`
}

func (s *SatelliteView) Empty() bool {
	return s == nil || (s.CloudCoveragePercent == nil && s.HeatZones == "" && s.WaterStressZones == "" && s.NDVIHotspots == "")
}
