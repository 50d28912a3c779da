package focus

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
)

// Search input longer than this scrolls the page to the alerts.
const scrollThreshold = 2

var cropKeywords = []string{"rice", "maize", "wheat"}

// View is what the focus controls currently display.
type View struct {
	Area        domain.FocusArea
	Highlighted domain.FocusArea
	// Dimmed is set while a search is active: non-highlighted controls fade.
	Dimmed      bool
	Display     domain.FocusDisplay
}

// SearchResult is the outcome of typing into the global search box.
type SearchResult struct {
	Query          string
	View           View
	Alerts         []domain.Alert
	ScrollToAlerts bool
}

// Selector holds the current focus area. It is purely local state.
type Selector struct {
	mu          sync.Mutex
	area        domain.FocusArea
	highlighted domain.FocusArea
	dimmed      bool
	logger      *zap.Logger
}

func NewSelector(logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		area:        domain.FocusSoil,
		highlighted: domain.FocusSoil,
		logger:      logger,
	}
}

// Select switches the focus area. Selecting the current area again yields
// the same view.
func (s *Selector) Select(raw string) (View, error) {
	area, err := domain.ParseFocusArea(raw)
	if err != nil {
		return s.View(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(area)
	return s.viewLocked(), nil
}

func (s *Selector) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Search resets the highlight, re-focuses on crop health when the query
// names a crop and filters alerts whose keywords contain the query.
func (s *Selector) Search(query string, alerts []domain.Alert) SearchResult {
	q := strings.ToLower(query)

	s.mu.Lock()
	s.highlighted = ""
	for _, kw := range cropKeywords {
		if strings.Contains(q, kw) {
			s.selectLocked(domain.FocusCrop)
			break
		}
	}
	// every control except the highlighted one fades out
	s.dimmed = true
	view := s.viewLocked()
	s.mu.Unlock()

	matched := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if strings.Contains(a.Keywords(), q) {
			matched = append(matched, a)
		}
	}

	return SearchResult{
		Query:          query,
		View:           view,
		Alerts:         matched,
		ScrollToAlerts: len(q) > scrollThreshold,
	}
}

func (s *Selector) selectLocked(area domain.FocusArea) {
	from := s.area
	s.area = area
	s.highlighted = area
	s.dimmed = false
	s.logger.Info("focus changed", zap.String("from", string(from)), zap.String("to", string(area)))
}

func (s *Selector) viewLocked() View {
	display, _ := s.area.Display()
	return View{
		Area:        s.area,
		Highlighted: s.highlighted,
		Dimmed:      s.dimmed,
		Display:     display,
	}
}
