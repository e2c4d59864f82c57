package index

import (
	"sort"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// ConflictDiagnostic records a deterministic tie-break outcome so it can be
// surfaced via status (I1, I4) rather than silently dropped.
type ConflictDiagnostic struct {
	Winner  ResourceKey
	Losers  []ResourceKey
	Reason  string
}

// PickServer implements (I1)'s "two Servers must not both match the same
// (pod, port)" tie-break: most-recently-created wins, with a conflict
// diagnostic recorded whenever more than one candidate matched.
func PickServer(candidates []resourcespecs.ServerSpec) (resourcespecs.ServerSpec, *ConflictDiagnostic) {
	if len(candidates) == 0 {
		return resourcespecs.ServerSpec{}, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	sorted := append([]resourcespecs.ServerSpec(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].Name < sorted[j].Name
	})

	winner := sorted[0]
	diag := &ConflictDiagnostic{
		Winner: ResourceKey{Namespace: winner.Namespace, Name: winner.Name},
		Reason: "multiple Servers match the same pod and port; most recently created wins",
	}
	for _, loser := range sorted[1:] {
		diag.Losers = append(diag.Losers, ResourceKey{Namespace: loser.Namespace, Name: loser.Name})
	}
	return winner, diag
}

// egressCandidate pairs an EgressNetworkSpec with the specific NetworkMatch
// entry (of possibly several) that matched the resolved IP, since
// specificity tie-breaking (I4.b) must compare that entry, not the whole
// spec.
type egressCandidate struct {
	Spec  resourcespecs.EgressNetworkSpec
	Match core.NetworkMatch
}

// PickEgressNetwork implements (I4)'s egress-network tie-break: (a) own
// namespace equal to srcNs, (b) most-specific CIDR, (c) earliest creation,
// (d) lexicographic name.
func PickEgressNetwork(srcNs string, candidates []egressCandidate) (egressCandidate, *ConflictDiagnostic) {
	if len(candidates) == 0 {
		return egressCandidate{}, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	sorted := append([]egressCandidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		aLocal, bLocal := a.Spec.Namespace == srcNs, b.Spec.Namespace == srcNs
		if aLocal != bLocal {
			return aLocal
		}

		as, bs := a.Match.Specificity(), b.Match.Specificity()
		if as != bs {
			return as > bs
		}

		if !a.Spec.CreatedAt.Equal(b.Spec.CreatedAt) {
			return a.Spec.CreatedAt.Before(b.Spec.CreatedAt)
		}

		return a.Spec.Name < b.Spec.Name
	})

	winner := sorted[0]
	diag := &ConflictDiagnostic{
		Winner: ResourceKey{Namespace: winner.Spec.Namespace, Name: winner.Spec.Name},
		Reason: "multiple EgressNetworks match the same destination IP",
	}
	for _, loser := range sorted[1:] {
		diag.Losers = append(diag.Losers, ResourceKey{Namespace: loser.Spec.Namespace, Name: loser.Spec.Name})
	}
	return winner, diag
}
