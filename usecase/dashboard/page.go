package dashboard

import (
	"sync"

	"github.com/fastygo/agrofocus/domain"
)

// Placeholder is what a widget shows until its region has data.
const Placeholder = "--"

// RegionStatus is the load state of a single region.
type RegionStatus string

const (
	StatusPending RegionStatus = "pending"
	StatusLoaded  RegionStatus = "loaded"
	StatusEmpty   RegionStatus = "empty"
	StatusFailed  RegionStatus = "failed"
)

// RegionState is the per-region bookkeeping kept on the page.
type RegionState struct {
	Status     RegionStatus
	Visible    bool
	EmptyState string
}

// Done reports whether the region completed a load (data or empty state).
func (s RegionState) Done() bool {
	return s.Status == StatusLoaded || s.Status == StatusEmpty
}

// ListItem is one row of a list widget.
type ListItem struct {
	Primary   string
	Secondary string
}

// Page holds everything the dashboard displays. Regions write only their own
// widgets, so concurrent loads never touch the same keys.
type Page struct {
	mu      sync.RWMutex
	widgets map[string]string
	lists   map[string][]ListItem
	regions map[RegionID]RegionState
	alerts  []domain.Alert
}

func NewPage() *Page {
	p := &Page{
		widgets: make(map[string]string),
		lists:   make(map[string][]ListItem),
		regions: make(map[RegionID]RegionState),
	}
	for _, r := range Regions() {
		p.regions[r.ID] = RegionState{Status: StatusPending, Visible: r.Trigger == TriggerPageLoad}
	}
	return p
}

// Widget returns the text of a widget, or the placeholder.
func (p *Page) Widget(id string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.widgets[id]; ok {
		return v
	}
	return Placeholder
}

func (p *Page) List(id string) []ListItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]ListItem(nil), p.lists[id]...)
}

func (p *Page) Region(id RegionID) RegionState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.regions[id]
}

// Alerts returns the alerts loaded by the summary region.
func (p *Page) Alerts() []domain.Alert {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]domain.Alert(nil), p.alerts...)
}

func (p *Page) setWidgets(values map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, v := range values {
		p.widgets[k] = v
	}
}

func (p *Page) setList(id string, items []ListItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lists[id] = items
}

func (p *Page) setAlerts(alerts []domain.Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append([]domain.Alert(nil), alerts...)
}

func (p *Page) updateRegion(id RegionID, fn func(*RegionState)) RegionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.regions[id]
	fn(&st)
	p.regions[id] = st
	return st
}
