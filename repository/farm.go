package repository

import (
	"context"

	"github.com/fastygo/agrofocus/domain"
)

// FarmRepository serves the reference datasets behind the public API.
type FarmRepository interface {
	Hello(ctx context.Context) (domain.Hello, error)
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
	SoilActions(ctx context.Context) ([]domain.SoilAction, error)
	WeatherToday(ctx context.Context) (domain.WeatherToday, error)
	WeatherForecast(ctx context.Context) ([]domain.ForecastDay, error)
	ListFields(ctx context.Context) ([]domain.Field, error)
	GetField(ctx context.Context, id string) (*domain.Field, error)
	SoilSummary(ctx context.Context) (domain.SoilSummary, error)
	YieldTrends(ctx context.Context) (domain.YieldTrends, error)
	WaterUse(ctx context.Context) (domain.WaterUse, error)
	CropHealth(ctx context.Context) (domain.CropHealth, error)
	CropHealthSnapshot(ctx context.Context) (domain.CropHealthSnapshot, error)
	DripStatus(ctx context.Context) (domain.DripStatus, error)
	SatelliteView(ctx context.Context) (domain.SatelliteView, error)
}
