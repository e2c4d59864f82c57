package index

import (
	"fmt"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// AuthJoin resolves one AuthorizationPolicy's authentication targets into a
// single ClientAuthorization, per §4.2 step 5 / §4.6: the networks are the
// union across every resolved Network target (unrestricted if none given),
// the identities are the union across every resolved MeshTLS/ServiceAccount
// target. It is a pure function of the authentication stores and the
// cluster's identity domain, so it can be re-run for any policy whenever an
// authentication resource it references changes (§4.6's dirtying rule).
//
// A target that cannot be resolved (the referenced MeshTLSAuthentication or
// NetworkAuthentication no longer exists) is dropped from the join rather
// than failing it outright — this also implements the symmetric-removal
// resolution of the NetworkAuthentication Reset open question recorded in
// DESIGN.md: a vanished authentication simply stops contributing on the
// next recompute. ok is false only if every target was unresolvable, in
// which case the policy contributes no authorization at all.
func AuthJoin(policyNamespace string, targets []resourcespecs.AuthenticationTarget, auth authStore, ci clusterinfo.ClusterInfo) (core.ClientAuthorization, bool) {
	var networks []core.NetworkMatch
	var identities []core.IdentityMatch
	resolvedAny := false

	for _, t := range targets {
		ns := t.Namespace
		if ns == "" {
			ns = policyNamespace
		}

		switch t.Kind {
		case resourcespecs.AuthTargetMeshTLS:
			spec, ok := auth.lookupMeshTLS(ns, t.Name)
			if !ok {
				continue
			}
			resolvedAny = true
			identities = append(identities, spec.Identities...)

		case resourcespecs.AuthTargetNetwork:
			spec, ok := auth.lookupNetwork(ns, t.Name)
			if !ok {
				continue
			}
			resolvedAny = true
			networks = append(networks, spec.Networks...)

		case resourcespecs.AuthTargetServiceAccount:
			resolvedAny = true
			identities = append(identities, core.ExactIdentity(ci.ServiceAccountIdentity(ns, t.Name)))

		default:
			panic(fmt.Sprintf("unhandled AuthenticationTargetKind %d", t.Kind))
		}
	}

	if !resolvedAny {
		return core.ClientAuthorization{}, false
	}

	mode := core.AuthTLSUnauthenticated
	if len(identities) > 0 {
		mode = core.AuthTLSAuthenticated
	}

	return core.ClientAuthorization{
		Networks:   networks,
		Mode:       mode,
		Identities: identities,
	}, true
}
