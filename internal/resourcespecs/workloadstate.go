package resourcespecs

import (
	corev1 "k8s.io/api/core/v1"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
)

// DefaultPolicyAnnotation overrides the cluster default policy on a single
// pod or external workload, per §4.2 step 1 ("annotation on pod →
// annotation on namespace → cluster default").
const DefaultPolicyAnnotation = "policy.meshpolicy.io/default-policy"

// WorkloadState is the InboundIndex's per-pod (or per-external-workload)
// view: its declared container ports and its live label set, used to
// resolve Server port-refs and selector matches.
type WorkloadState struct {
	Namespace            string
	Name                 string
	Labels               map[string]string
	ContainerPorts       map[string]int32 // name -> number
	External             bool
	DefaultPolicyOverride *clusterinfo.DefaultPolicy
}

func parseDefaultPolicyAnnotation(annotations map[string]string) *clusterinfo.DefaultPolicy {
	v, ok := annotations[DefaultPolicyAnnotation]
	if !ok || v == "" {
		return nil
	}
	dp, err := clusterinfo.ParseDefaultPolicy(v)
	if err != nil {
		return nil
	}
	return &dp
}

// ParsePodState projects a corev1.Pod into a WorkloadState.
func ParsePodState(pod *corev1.Pod) WorkloadState {
	ports := make(map[string]int32)
	for _, c := range pod.Spec.Containers {
		for _, p := range c.Ports {
			if p.Name != "" {
				ports[p.Name] = p.ContainerPort
			}
		}
	}
	return WorkloadState{
		Namespace:             pod.Namespace,
		Name:                  pod.Name,
		Labels:                pod.Labels,
		ContainerPorts:        ports,
		DefaultPolicyOverride: parseDefaultPolicyAnnotation(pod.Annotations),
	}
}

// ParseExternalWorkloadState projects an ExternalWorkload into a
// WorkloadState.
func ParseExternalWorkloadState(ew *policyv1alpha1.ExternalWorkload) WorkloadState {
	ports := make(map[string]int32)
	for _, p := range ew.Spec.Ports {
		if p.Name != "" {
			ports[p.Name] = p.Port
		}
	}
	return WorkloadState{
		Namespace:             ew.Namespace,
		Name:                  ew.Name,
		Labels:                ew.Labels,
		ContainerPorts:        ports,
		External:              true,
		DefaultPolicyOverride: parseDefaultPolicyAnnotation(ew.Annotations),
	}
}
