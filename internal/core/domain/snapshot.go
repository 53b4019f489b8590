package domain

// Snapshot is the whole dataset and the atomic unit of synchronization: the
// exact JSON document exchanged with the remote store. There is no delta
// format; pulls and pushes always move the entire snapshot.
type Snapshot struct {
	Tasks         []Task             `json:"tasks"`
	Categories    []string           `json:"categories"`
	Logs          []ActivityLogEntry `json:"logs"`
	Version       int64              `json:"version"`
	LastUpdatedBy string             `json:"lastUpdatedBy,omitempty"`
	Timestamp     int64              `json:"timestamp"`
}

// Clone returns a deep copy so callers can hand snapshots out without
// aliasing the engine's internal state.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Categories = append([]string(nil), s.Categories...)
	out.Logs = append([]ActivityLogEntry(nil), s.Logs...)
	return out
}

// DefaultSnapshot is the hardcoded dataset a fresh install boots from when
// the local cache is empty and the remote document does not exist yet.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Tasks:      []Task{},
		Categories: []string{"Venue", "Catering", "Program", "Logistics"},
		Logs:       []ActivityLogEntry{},
		Version:    0,
	}
}
