package monitor

import (
	"sort"
	"time"
)

type Status struct {
	Components map[string]bool `json:"components"`
	LastCheck  time.Time       `json:"last_check"`
}

// Online is false until at least one probe has run.
func (s Status) Online() bool {
	if len(s.Components) == 0 {
		return false
	}
	for _, ok := range s.Components {
		if !ok {
			return false
		}
	}
	return true
}

// Names returns component names in stable order.
func (s Status) Names() []string {
	names := make([]string, 0, len(s.Components))
	for name := range s.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Status) clone() Status {
	out := Status{LastCheck: s.LastCheck, Components: make(map[string]bool, len(s.Components))}
	for k, v := range s.Components {
		out.Components[k] = v
	}
	return out
}
