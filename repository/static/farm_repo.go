package static

import (
	"context"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/repository"
)

type farmRepository struct {
	data Dataset
}

// NewFarmRepository serves the built-in reference datasets.
func NewFarmRepository() repository.FarmRepository {
	return &farmRepository{data: DefaultDataset()}
}

// NewFarmRepositoryWith serves a caller-provided dataset.
func NewFarmRepositoryWith(data Dataset) repository.FarmRepository {
	return &farmRepository{data: data}
}

func (r *farmRepository) Hello(context.Context) (domain.Hello, error) {
	return r.data.Hello, nil
}

func (r *farmRepository) DashboardSummary(context.Context) (domain.DashboardSummary, error) {
	return r.data.Summary, nil
}

func (r *farmRepository) SoilActions(context.Context) ([]domain.SoilAction, error) {
	return r.data.SoilActions, nil
}

func (r *farmRepository) WeatherToday(context.Context) (domain.WeatherToday, error) {
	return r.data.WeatherToday, nil
}

func (r *farmRepository) WeatherForecast(context.Context) ([]domain.ForecastDay, error) {
	return r.data.WeatherForecast, nil
}

func (r *farmRepository) ListFields(context.Context) ([]domain.Field, error) {
	return r.data.Fields, nil
}

func (r *farmRepository) GetField(_ context.Context, id string) (*domain.Field, error) {
	for i := range r.data.Fields {
		if r.data.Fields[i].ID == id {
			field := r.data.Fields[i]
			return &field, nil
		}
	}
	return nil, domain.ErrFieldNotFound
}

func (r *farmRepository) SoilSummary(context.Context) (domain.SoilSummary, error) {
	return r.data.SoilSummary, nil
}

func (r *farmRepository) YieldTrends(context.Context) (domain.YieldTrends, error) {
	return r.data.YieldTrends, nil
}

func (r *farmRepository) WaterUse(context.Context) (domain.WaterUse, error) {
	return r.data.WaterUse, nil
}

func (r *farmRepository) CropHealth(context.Context) (domain.CropHealth, error) {
	return r.data.CropHealth, nil
}

func (r *farmRepository) CropHealthSnapshot(context.Context) (domain.CropHealthSnapshot, error) {
	return r.data.CropHealthSnapshot, nil
}

func (r *farmRepository) DripStatus(context.Context) (domain.DripStatus, error) {
	return r.data.DripStatus, nil
}

func (r *farmRepository) SatelliteView(context.Context) (domain.SatelliteView, error) {
	return r.data.SatelliteView, nil
}
