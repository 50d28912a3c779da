package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fastygo/agrofocus/domain"
)

// RegionResult reports how one region load ended.
type RegionResult struct {
	Region   RegionID
	Status   RegionStatus
	Err      error
	Duration time.Duration
}

// Orchestrator loads dashboard regions independently of each other. A
// failing region keeps its placeholders and never affects the others.
type Orchestrator struct {
	api    API
	page   *Page
	logger *zap.Logger

	soilMu sync.Mutex
}

func New(api API, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		api:    api,
		page:   NewPage(),
		logger: logger,
	}
}

func (o *Orchestrator) Page() *Page {
	return o.page
}

// LoadPage fans out every page-load region and waits for all of them.
// Results are returned in completion order.
func (o *Orchestrator) LoadPage(ctx context.Context) []RegionResult {
	var (
		mu      sync.Mutex
		results []RegionResult
		g       errgroup.Group
	)

	for _, r := range regions {
		if r.Trigger != TriggerPageLoad {
			continue
		}
		g.Go(func() error {
			res := o.run(ctx, r)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// LoadRegion loads a single region regardless of its trigger.
func (o *Orchestrator) LoadRegion(ctx context.Context, id RegionID) (RegionResult, error) {
	r, ok := RegionByID(id)
	if !ok {
		return RegionResult{}, domain.NewError(domain.ErrCodeNotFound, "unknown region "+string(id))
	}
	return o.run(ctx, r), nil
}

// ToggleSoilActions fetches the soil action list on first use and afterwards
// only flips its visibility. Only a completed load is cached; a transport
// failure leaves the region unloaded so the next toggle fetches again.
func (o *Orchestrator) ToggleSoilActions(ctx context.Context) RegionState {
	o.soilMu.Lock()
	defer o.soilMu.Unlock()

	if o.page.Region(RegionSoilActions).Done() {
		return o.page.updateRegion(RegionSoilActions, func(st *RegionState) {
			st.Visible = !st.Visible
		})
	}

	r, _ := RegionByID(RegionSoilActions)
	res := o.run(ctx, r)
	return o.page.updateRegion(RegionSoilActions, func(st *RegionState) {
		st.Visible = res.Status == StatusLoaded || res.Status == StatusEmpty
	})
}

func (o *Orchestrator) run(ctx context.Context, r Region) RegionResult {
	start := time.Now()
	err := r.load(ctx, o.api, o.page)
	res := RegionResult{Region: r.ID, Err: err, Duration: time.Since(start)}

	log := o.logger.With(zap.String("region", string(r.ID)), zap.String("endpoint", r.Endpoint))

	switch {
	case err == nil:
		res.Status = StatusLoaded
		log.Debug("region loaded", zap.Duration("duration", res.Duration))
	case domain.IsDomainError(err, domain.ErrCodeMalformedPayload):
		res.Status = StatusEmpty
		log.Warn("region payload empty or malformed", zap.Error(err))
	default:
		res.Status = StatusFailed
		log.Error("region fetch failed", zap.Error(err))
	}

	o.page.updateRegion(r.ID, func(st *RegionState) {
		if res.Status == StatusFailed && st.Done() {
			// keep the last good render
			return
		}
		st.Status = res.Status
		st.EmptyState = ""
		if res.Status == StatusEmpty {
			st.EmptyState = r.emptyState()
		}
	})
	return res
}
