package resourcespecs

import (
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// PortRef is either a numeric port or a named container port, resolved
// against a selected workload's declared ports at join time.
type PortRef struct {
	Number int32
	Name   string
}

func (p PortRef) IsNamed() bool { return p.Name != "" }

// Resolve returns the concrete port number for a workload's declared ports.
func (p PortRef) Resolve(containerPorts map[string]int32) (int32, bool) {
	if !p.IsNamed() {
		return p.Number, true
	}
	n, ok := containerPorts[p.Name]
	return n, ok
}

// SelectorSpec is an AND of matchLabels/matchExpressions over either pods or
// external workloads; exactly one of Pod/ExternalWorkload is non-nil.
type SelectorSpec struct {
	Pod              labels.Selector
	ExternalWorkload labels.Selector
}

// Matches reports whether the selector accepts a pod with the given labels.
func (s SelectorSpec) Matches(set labels.Set) bool {
	if s.Pod != nil {
		return s.Pod.Matches(set)
	}
	if s.ExternalWorkload != nil {
		return s.ExternalWorkload.Matches(set)
	}
	return false
}

// ServerSpec is the canonical projection of a Server resource.
type ServerSpec struct {
	Namespace     string
	Name          string
	Labels        map[string]string
	Selector      SelectorSpec
	Port          PortRef
	ProxyProtocol core.ProxyProtocol
	AccessPolicy  string
	CreatedAt     time.Time
}

// ParseServer validates and projects a Server resource.
func ParseServer(obj *policyv1alpha1.Server) (ServerSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	sel, selErrs := parseSelector(obj.Spec.Selector, fld)
	errs = append(errs, selErrs...)

	port := PortRef{}
	if obj.Spec.Port.NamedPort != "" {
		port.Name = obj.Spec.Port.NamedPort
	} else {
		port.Number = obj.Spec.Port.Number
	}
	if port.Name == "" && (port.Number < 1 || port.Number > 65535) {
		errs = append(errs, field.Invalid(fld.Child("port", "number"), obj.Spec.Port.Number, "must be between 1 and 65535"))
	}

	protocol, err := parseProxyProtocol(obj.Spec.ProxyProtocol)
	if err != nil {
		errs = append(errs, field.Invalid(fld.Child("proxyProtocol"), obj.Spec.ProxyProtocol, err.Error()))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=Server", errs); err != nil {
		return ServerSpec{}, err
	}

	accessPolicy := ""
	if obj.Spec.AccessPolicy != nil {
		accessPolicy = *obj.Spec.AccessPolicy
	}

	return ServerSpec{
		Namespace:     obj.Namespace,
		Name:          obj.Name,
		Labels:        obj.Labels,
		Selector:      sel,
		Port:          port,
		ProxyProtocol: protocol,
		AccessPolicy:  accessPolicy,
		CreatedAt:     obj.CreationTimestamp.Time,
	}, nil
}

func parseSelector(s policyv1alpha1.Selector, fld *field.Path) (SelectorSpec, field.ErrorList) {
	var errs field.ErrorList

	switch {
	case s.Pod != nil && s.ExternalWorkload != nil:
		errs = append(errs, field.Forbidden(fld.Child("selector"), "exactly one of podSelector or externalWorkloadSelector must be set"))
	case s.Pod == nil && s.ExternalWorkload == nil:
		errs = append(errs, field.Required(fld.Child("selector"), "exactly one of podSelector or externalWorkloadSelector must be set"))
	}

	out := SelectorSpec{}
	if s.Pod != nil {
		sel, err := metav1.LabelSelectorAsSelector(s.Pod)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("selector", "podSelector"), s.Pod, err.Error()))
		} else {
			out.Pod = sel
		}
	}
	if s.ExternalWorkload != nil {
		sel, err := metav1.LabelSelectorAsSelector(s.ExternalWorkload)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("selector", "externalWorkloadSelector"), s.ExternalWorkload, err.Error()))
		} else {
			out.ExternalWorkload = sel
		}
	}

	return out, errs
}

func parseProxyProtocol(p *policyv1alpha1.ProxyProtocol) (core.ProxyProtocol, error) {
	if p == nil {
		return core.ProxyProtocol{Kind: core.ProtoDetect}, nil
	}
	switch *p {
	case policyv1alpha1.ProxyProtocolUnknown, "":
		return core.ProxyProtocol{Kind: core.ProtoDetect}, nil
	case policyv1alpha1.ProxyProtocolHTTP1:
		return core.ProxyProtocol{Kind: core.ProtoHTTP1}, nil
	case policyv1alpha1.ProxyProtocolHTTP2:
		return core.ProxyProtocol{Kind: core.ProtoHTTP2}, nil
	case policyv1alpha1.ProxyProtocolGRPC:
		return core.ProxyProtocol{Kind: core.ProtoGRPC}, nil
	case policyv1alpha1.ProxyProtocolOpaque:
		return core.ProxyProtocol{Kind: core.ProtoOpaque}, nil
	case policyv1alpha1.ProxyProtocolTLS:
		return core.ProxyProtocol{Kind: core.ProtoTLS}, nil
	default:
		return core.ProxyProtocol{}, fmt.Errorf("unrecognized proxy protocol %q", *p)
	}
}
