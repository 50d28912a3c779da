package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fastygo/agrofocus/api/transport"
	"github.com/fastygo/agrofocus/domain"
)

// RegionID names an independently loaded dashboard panel.
type RegionID string

const (
	RegionSummary            RegionID = "summary"
	RegionCropHealthSnapshot RegionID = "crop-health-snapshot"
	RegionDripStatus         RegionID = "drip-status"
	RegionSatelliteView      RegionID = "satellite-view"
	RegionSoilActions        RegionID = "soil-actions"
)

// Trigger says when a region loads.
type Trigger string

const (
	TriggerPageLoad    Trigger = "page-load"
	TriggerInteraction Trigger = "interaction"
)

// Widget ids.
const (
	WidgetTodayFocus         = "todayFocus"
	WidgetRecommendedActions = "recommendedActions"
	WidgetSoilMoistureAvg    = "soilMoistureAvg"
	WidgetCropNdvi           = "cropNdvi"
	WidgetCropNdviTrend      = "cropNdviTrend"
	WidgetLeafWetness        = "leafWetness"
	WidgetLeafWetnessNote    = "leafWetnessNote"
	WidgetChlorophyllIndex   = "chlorophyllIndex"
	WidgetChlorophyllNote    = "chlorophyllNote"
	WidgetDripFlow           = "dripFlow"
	WidgetDripPressure       = "dripPressure"
	WidgetDripPressureNote   = "dripPressureNote"
	WidgetDripBlockage       = "dripBlockage"
	WidgetDripUniformity     = "dripUniformity"
	WidgetSatCloud           = "satCloud"
	WidgetSatCloudNote       = "satCloudNote"
	WidgetSatHeatZones       = "satHeatZones"
	WidgetSatWaterStress     = "satWaterStress"
	WidgetSatNdviHotspots    = "satNdviHotspots"

	ListAlerts      = "alerts"
	ListSoilActions = "soilActions"
)

// API is the slice of the farm API the dashboard reads.
type API interface {
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
	SoilActions(ctx context.Context) ([]domain.SoilAction, error)
	CropHealthSnapshot(ctx context.Context) (domain.CropHealthSnapshot, error)
	DripStatus(ctx context.Context) (domain.DripStatus, error)
	SatelliteView(ctx context.Context) (domain.SatelliteView, error)
}

// Region describes one panel: when it loads, where from, and how the
// payload maps onto the page.
type Region struct {
	ID         RegionID
	Title      string
	Trigger    Trigger
	Endpoint   string
	EmptyState string
	load       func(ctx context.Context, api API, page *Page) error
}

var regions = []Region{
	{
		ID:       RegionSummary,
		Title:    "Today on the farm",
		Trigger:  TriggerPageLoad,
		Endpoint: transport.PathDashboardSummary,
		load:     loadSummary,
	},
	{
		ID:       RegionCropHealthSnapshot,
		Title:    "Crop health snapshot",
		Trigger:  TriggerPageLoad,
		Endpoint: transport.PathCropHealthSnapshot,
		load:     loadCropHealthSnapshot,
	},
	{
		ID:       RegionDripStatus,
		Title:    "Drip irrigation status",
		Trigger:  TriggerPageLoad,
		Endpoint: transport.PathDripStatus,
		load:     loadDripStatus,
	},
	{
		ID:       RegionSatelliteView,
		Title:    "Satellite view",
		Trigger:  TriggerPageLoad,
		Endpoint: transport.PathSatelliteView,
		load:     loadSatelliteView,
	},
	{
		ID:         RegionSoilActions,
		Title:      "Soil actions",
		Trigger:    TriggerInteraction,
		Endpoint:   transport.PathSoilActions,
		EmptyState: "No tasks returned from backend. Check " + transport.PathSoilActions + ".",
		load:       loadSoilActions,
	},
}

// Regions lists every region in display order.
func Regions() []Region {
	return append([]Region(nil), regions...)
}

// RegionByID looks a region up.
func RegionByID(id RegionID) (Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

var tiles = map[string]RegionID{
	"crop": RegionCropHealthSnapshot,
	"drip": RegionDripStatus,
	"sat":  RegionSatelliteView,
}

// TileRegion maps a header image tile to the card it scrolls to.
func TileRegion(tile string) (RegionID, bool) {
	id, ok := tiles[tile]
	return id, ok
}

func (r Region) emptyState() string {
	if r.EmptyState != "" {
		return r.EmptyState
	}
	return fmt.Sprintf("No data returned from backend. Check %s.", r.Endpoint)
}

func loadSummary(ctx context.Context, api API, page *Page) error {
	data, err := api.DashboardSummary(ctx)
	if err != nil {
		return err
	}
	if data.Empty() {
		return domain.ErrMalformedPayload
	}

	items := make([]ListItem, 0, len(data.Alerts))
	for _, a := range data.Alerts {
		items = append(items, ListItem{Primary: a.Text, Secondary: a.Type})
	}

	page.setWidgets(map[string]string{
		WidgetTodayFocus:         orPlaceholder(data.TodayFocus),
		WidgetRecommendedActions: strconv.Itoa(data.RecommendedActions),
		WidgetSoilMoistureAvg:    formatFloat(data.SoilMoistureAvg) + "%",
	})
	page.setList(ListAlerts, items)
	page.setAlerts(data.Alerts)
	return nil
}

func loadCropHealthSnapshot(ctx context.Context, api API, page *Page) error {
	data, err := api.CropHealthSnapshot(ctx)
	if err != nil {
		return err
	}
	if data.Empty() {
		return domain.ErrMalformedPayload
	}

	page.setWidgets(map[string]string{
		WidgetCropNdvi:         orPlaceholder(data.NDVI.Format(2)),
		WidgetCropNdviTrend:    orPlaceholder(data.NDVITrend),
		WidgetLeafWetness:      orPlaceholder(data.LeafWetness),
		WidgetLeafWetnessNote:  orPlaceholder(data.LeafWetnessNote),
		WidgetChlorophyllIndex: orPlaceholder(data.ChlorophyllIndex),
		WidgetChlorophyllNote:  orPlaceholder(data.ChlorophyllNote),
	})
	return nil
}

func loadDripStatus(ctx context.Context, api API, page *Page) error {
	data, err := api.DripStatus(ctx)
	if err != nil {
		return err
	}
	if data.Empty() {
		return domain.ErrMalformedPayload
	}

	page.setWidgets(map[string]string{
		WidgetDripFlow:         withUnit(data.FlowRateLpm, " L/min"),
		WidgetDripPressure:     withUnit(data.PressureBar, " bar"),
		WidgetDripPressureNote: orPlaceholder(data.PressureNote),
		WidgetDripBlockage:     orPlaceholder(data.Blockage),
		WidgetDripUniformity:   orPlaceholder(data.Uniformity),
	})
	return nil
}

func loadSatelliteView(ctx context.Context, api API, page *Page) error {
	data, err := api.SatelliteView(ctx)
	if err != nil {
		return err
	}
	if data.Empty() {
		return domain.ErrMalformedPayload
	}

	page.setWidgets(map[string]string{
		WidgetSatCloud:        withUnit(data.CloudCoveragePercent, "%"),
		WidgetSatCloudNote:    orPlaceholder(data.CloudNote),
		WidgetSatHeatZones:    orPlaceholder(data.HeatZones),
		WidgetSatWaterStress:  orPlaceholder(data.WaterStressZones),
		WidgetSatNdviHotspots: orPlaceholder(data.NDVIHotspots),
	})
	return nil
}

func loadSoilActions(ctx context.Context, api API, page *Page) error {
	data, err := api.SoilActions(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return domain.ErrMalformedPayload
	}

	items := make([]ListItem, 0, len(data))
	for _, a := range data {
		items = append(items, ListItem{
			Primary:   fmt.Sprintf("%s · %s priority", a.Field, a.Priority),
			Secondary: a.Action,
		})
	}
	page.setList(ListSoilActions, items)
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return Placeholder
	}
	return formatFloat(*v) + unit
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
