package resourcespecs

import (
	"net/netip"

	corev1 "k8s.io/api/core/v1"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
)

// ApplicationProtocol names the well-known port annotations/appProtocol
// values the outbound index uses to classify a service port.
type ApplicationProtocol string

const (
	AppProtocolOpaque ApplicationProtocol = "linkerd.io/opaque"
	AppProtocolHTTP1  ApplicationProtocol = "http/1"
	AppProtocolHTTP2  ApplicationProtocol = "http/2"
	AppProtocolGRPC   ApplicationProtocol = "grpc"
)

// ServicePort is one declared port of a Service, with its resolved
// application protocol.
type ServicePort struct {
	Name                string
	Port                int32
	TargetPort          int32
	ApplicationProtocol ApplicationProtocol
}

// Opaque reports whether this port should skip protocol detection, given
// the cluster-wide default opaque ports (union, per the resolved Open
// Question in SPEC_FULL.md).
func (p ServicePort) Opaque(ci clusterinfo.ClusterInfo) bool {
	return p.ApplicationProtocol == AppProtocolOpaque || ci.IsDefaultOpaquePort(p.Port)
}

// ServiceInfo is the canonical projection of a Service resource relevant to
// outbound resolution.
type ServiceInfo struct {
	Namespace  string
	Name       string
	ClusterIPs []netip.Addr
	Ports      []ServicePort
	Valid      bool
}

// ParseService projects a corev1.Service. Services are not subject to the
// field.ErrorList validation convention — an invalid or headless Service
// simply resolves with Valid=false rather than being rejected outright,
// since the outbound index must still track it to detect the IP becoming
// valid later.
func ParseService(svc *corev1.Service) ServiceInfo {
	info := ServiceInfo{
		Namespace: svc.Namespace,
		Name:      svc.Name,
	}

	valid := svc.Spec.Type != corev1.ServiceTypeExternalName
	for _, ipStr := range svc.Spec.ClusterIPs {
		if ipStr == "" || ipStr == corev1.ClusterIPNone {
			continue
		}
		if ip, err := netip.ParseAddr(ipStr); err == nil {
			info.ClusterIPs = append(info.ClusterIPs, ip)
		}
	}
	if len(info.ClusterIPs) == 0 {
		valid = false
	}
	info.Valid = valid

	for _, p := range svc.Spec.Ports {
		sp := ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: p.TargetPort.IntVal,
		}
		appProto := svc.Annotations["linkerd.io/appProtocol"]
		if p.AppProtocol != nil {
			appProto = *p.AppProtocol
		}
		switch ApplicationProtocol(appProto) {
		case AppProtocolOpaque, AppProtocolHTTP1, AppProtocolHTTP2, AppProtocolGRPC:
			sp.ApplicationProtocol = ApplicationProtocol(appProto)
		}
		info.Ports = append(info.Ports, sp)
	}

	return info
}
