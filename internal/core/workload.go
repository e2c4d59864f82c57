package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Workload identifies the subject of an inbound discovery lookup: either a
// pod in a namespace, or an external workload addressed by identity.
type Workload struct {
	Namespace        string
	Pod              string
	ExternalWorkload string
}

// IsExternal reports whether this workload names an ExternalWorkload rather
// than a Pod.
func (w Workload) IsExternal() bool { return w.ExternalWorkload != "" }

// Key renders the legacy "ns:pod" text form used by ParseWorkloadKey.
func (w Workload) Key() string {
	if w.IsExternal() {
		return w.Namespace + ":" + w.ExternalWorkload
	}
	return w.Namespace + ":" + w.Pod
}

type workloadKeyJSON struct {
	Namespace        string `json:"ns"`
	Pod              string `json:"pod,omitempty"`
	ExternalWorkload string `json:"external_workload,omitempty"`
}

// ParseWorkloadKey accepts either the legacy "{ns}:{pod}" text form or the
// JSON form {"ns":…,"pod"|"external_workload":…}.
func ParseWorkloadKey(s string) (Workload, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		var j workloadKeyJSON
		if err := json.Unmarshal([]byte(s), &j); err != nil {
			return Workload{}, fmt.Errorf("invalid workload key %q: %w", s, err)
		}
		if j.Namespace == "" || (j.Pod == "" && j.ExternalWorkload == "") {
			return Workload{}, fmt.Errorf("invalid workload key %q: missing namespace or pod/external_workload", s)
		}
		if j.Pod != "" && j.ExternalWorkload != "" {
			return Workload{}, fmt.Errorf("invalid workload key %q: both pod and external_workload set", s)
		}
		return Workload{Namespace: j.Namespace, Pod: j.Pod, ExternalWorkload: j.ExternalWorkload}, nil
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Workload{}, fmt.Errorf("invalid workload key %q: expected \"ns:pod\"", s)
	}
	return Workload{Namespace: parts[0], Pod: parts[1]}, nil
}
