package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/internal/infrastructure/monitor"
	"github.com/fastygo/agrofocus/usecase/dashboard"
	"github.com/fastygo/agrofocus/usecase/focus"
)

type widgetLine struct {
	label string
	id    string
	note  string
}

var regionWidgets = map[dashboard.RegionID][]widgetLine{
	dashboard.RegionSummary: {
		{label: "Today's focus", id: dashboard.WidgetTodayFocus},
		{label: "Recommended actions", id: dashboard.WidgetRecommendedActions},
		{label: "Avg soil moisture", id: dashboard.WidgetSoilMoistureAvg},
	},
	dashboard.RegionCropHealthSnapshot: {
		{label: "NDVI", id: dashboard.WidgetCropNdvi, note: dashboard.WidgetCropNdviTrend},
		{label: "Leaf wetness", id: dashboard.WidgetLeafWetness, note: dashboard.WidgetLeafWetnessNote},
		{label: "Chlorophyll index", id: dashboard.WidgetChlorophyllIndex, note: dashboard.WidgetChlorophyllNote},
	},
	dashboard.RegionDripStatus: {
		{label: "Flow rate", id: dashboard.WidgetDripFlow},
		{label: "Pressure", id: dashboard.WidgetDripPressure, note: dashboard.WidgetDripPressureNote},
		{label: "Blockage", id: dashboard.WidgetDripBlockage},
		{label: "Uniformity", id: dashboard.WidgetDripUniformity},
	},
	dashboard.RegionSatelliteView: {
		{label: "Cloud cover", id: dashboard.WidgetSatCloud, note: dashboard.WidgetSatCloudNote},
		{label: "Heat zones", id: dashboard.WidgetSatHeatZones},
		{label: "Water stress", id: dashboard.WidgetSatWaterStress},
		{label: "NDVI hotspots", id: dashboard.WidgetSatNdviHotspots},
	},
}

var regionLists = map[dashboard.RegionID]string{
	dashboard.RegionSummary:     dashboard.ListAlerts,
	dashboard.RegionSoilActions: dashboard.ListSoilActions,
}

func renderHeader(w io.Writer, name, health string) {
	line := "Welcome, " + name
	if health != "" {
		line += "   [api: " + health + "]"
	}
	fmt.Fprintln(w, line)
}

func renderPage(w io.Writer, page *dashboard.Page) {
	for _, r := range dashboard.Regions() {
		if !page.Region(r.ID).Visible {
			continue
		}
		renderRegion(w, page, r.ID)
	}
}

func renderRegion(w io.Writer, page *dashboard.Page, id dashboard.RegionID) {
	r, ok := dashboard.RegionByID(id)
	if !ok {
		return
	}
	st := page.Region(id)

	fmt.Fprintf(w, "\n== %s ==\n", r.Title)
	if st.Status == dashboard.StatusEmpty {
		fmt.Fprintf(w, "  %s\n", st.EmptyState)
		return
	}

	for _, wl := range regionWidgets[id] {
		value := page.Widget(wl.id)
		if wl.note != "" {
			if note := page.Widget(wl.note); note != dashboard.Placeholder {
				value += " (" + note + ")"
			}
		}
		fmt.Fprintf(w, "  %-20s %s\n", wl.label+":", value)
	}
	if listID, ok := regionLists[id]; ok {
		for _, item := range page.List(listID) {
			fmt.Fprintf(w, "  - %s\n", item.Primary)
			if item.Secondary != "" {
				fmt.Fprintf(w, "    %s\n", item.Secondary)
			}
		}
	}
}

func renderFocus(w io.Writer, v focus.View) {
	var tabs []string
	for _, area := range domain.FocusAreas {
		d, _ := area.Display()
		label := d.Label
		switch {
		case area == v.Highlighted:
			label = "[" + label + "]"
		case v.Dimmed:
			label = "(" + strings.ToLower(label) + ")"
		}
		tabs = append(tabs, label)
	}

	d := v.Display
	fmt.Fprintf(w, "\nFocus: %s\n", strings.Join(tabs, "  "))
	fmt.Fprintf(w, "  %s\n  %s\n", d.Title, d.Description)
	fmt.Fprintf(w, "  %s: %s\n", d.MetricTitle, d.MetricValue)
	fmt.Fprintf(w, "  Moisture %s | Nitrogen %s | Irrigation %s | Yield %s\n",
		d.KPIs.Moisture, d.KPIs.Nitrogen, d.KPIs.Irrigation, d.KPIs.Yield)
}

func renderSearch(w io.Writer, res focus.SearchResult) {
	renderFocus(w, res.View)
	if res.ScrollToAlerts {
		fmt.Fprintln(w, "\n>> Jumped to alerts")
	}
	fmt.Fprintf(w, "\nAlerts matching %q:\n", res.Query)
	if len(res.Alerts) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, a := range res.Alerts {
		fmt.Fprintf(w, "  - [%s] %s\n", a.Type, a.Text)
	}
}

func renderField(w io.Writer, f domain.Field, v domain.MapView) {
	fmt.Fprintf(w, "\n== %s ==\n", f.Name)
	fmt.Fprintf(w, "  Crop: %s, %.1f acres, status %s\n", f.Crop, f.AreaAcres, f.Status)
	fmt.Fprintf(w, "  Moisture %.0f%% | NDVI %.2f | Risk %s\n", f.MoisturePercent, f.NDVI, f.Risk)
	fmt.Fprintf(w, "  Map centered at %.4f, %.4f (zoom %d)\n", v.Lat, v.Lng, v.Zoom)
}

func renderStatus(w io.Writer, st monitor.Status) {
	for _, name := range st.Names() {
		state := "down"
		if st.Components[name] {
			state = "ok"
		}
		fmt.Fprintf(w, "  %-10s %s\n", name, state)
	}
	fmt.Fprintf(w, "  checked at %s\n", st.LastCheck.Format("15:04:05"))
}
