package transport

// API paths served by the farm data provider.
const (
	PathHello              = "/api/hello"
	PathDashboardSummary   = "/api/dashboard/summary"
	PathSoilActions        = "/api/soil/actions"
	PathWeatherToday       = "/api/weather/today"
	PathWeatherForecast    = "/api/weather/forecast"
	PathFields             = "/api/fields"
	PathSoilSummary        = "/api/soil/summary"
	PathYieldTrends        = "/api/yield/trends"
	PathWaterUse           = "/api/water/use"
	PathCropHealth         = "/api/crop-health"
	PathCropHealthSnapshot = "/api/dashboard/crop-health-snapshot"
	PathDripStatus         = "/api/dashboard/drip-status"
	PathSatelliteView      = "/api/dashboard/satellite-view"
)
