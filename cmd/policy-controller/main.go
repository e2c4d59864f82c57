package main

import (
	"flag"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/discovery"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/ingest"
	"github.com/meshpolicy/policy-controller/internal/resolver"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(policyv1alpha1.AddToScheme(scheme))
	utilruntime.Must(gatewayv1.Install(scheme))
	utilruntime.Must(gatewayv1alpha2.Install(scheme))
}

func main() {
	var metricsAddr string
	var probeAddr string
	var enableLeaderElection bool
	var leaderElectionNamespace string
	var networksFlag string
	var probeNetworksFlag string
	var controlPlaneNamespace string
	var dnsDomain string
	var trustDomain string
	var defaultPolicyFlag string
	var defaultDetectTimeout time.Duration
	var defaultOpaquePortsFlag string
	var globalEgressNetworkNamespace string

	flag.StringVar(&metricsAddr, "metrics-bind-address", "0", "The address the metrics endpoint binds to, or 0 to disable it.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false, "Enable leader election for the controller manager.")
	flag.StringVar(&leaderElectionNamespace, "leader-elect-namespace", "", "The namespace to use for leader election.")
	flag.StringVar(&networksFlag, "cluster-networks", "10.0.0.0/8,172.16.0.0/12,192.168.0.0/16", "Comma-separated CIDRs covering every pod IP in the cluster.")
	flag.StringVar(&probeNetworksFlag, "probe-networks", "", "Comma-separated CIDRs health-check probes are expected to originate from.")
	flag.StringVar(&controlPlaneNamespace, "control-plane-namespace", "linkerd", "Namespace the mesh control plane runs in.")
	flag.StringVar(&dnsDomain, "dns-domain", "cluster.local", "Cluster DNS suffix.")
	flag.StringVar(&trustDomain, "trust-domain", "cluster.local", "Mesh identity trust domain.")
	flag.StringVar(&defaultPolicyFlag, "default-policy", string(clusterinfo.AllUnauthenticated), "Cluster-wide default inbound policy.")
	flag.DurationVar(&defaultDetectTimeout, "default-detect-timeout", 10*time.Second, "Protocol detection timeout for default Servers.")
	flag.StringVar(&defaultOpaquePortsFlag, "default-opaque-ports", "25,443,587,3306,5432,6379,9300,11211", "Comma-separated ports that default to opaque traffic.")
	flag.StringVar(&globalEgressNetworkNamespace, "global-egress-network-namespace", "", "Namespace whose EgressNetworks apply mesh-wide.")

	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	ci, err := buildClusterInfo(networksFlag, probeNetworksFlag, defaultOpaquePortsFlag, controlPlaneNamespace, dnsDomain, trustDomain, defaultPolicyFlag, defaultDetectTimeout, globalEgressNetworkNamespace)
	if err != nil {
		setupLog.Error(err, "invalid cluster configuration")
		os.Exit(1)
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                  scheme,
		Metrics:                 metricsserver.Options{BindAddress: metricsAddr},
		HealthProbeBindAddress:  probeAddr,
		LeaderElection:          enableLeaderElection,
		LeaderElectionID:        "policy-controller.meshpolicy.io",
		LeaderElectionNamespace: leaderElectionNamespace,
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	idx := index.New(ci)
	retryFilters := ingest.NewRetryFilterStore()
	failureInjectorFilters := ingest.NewFailureInjectorFilterStore()
	statusQueue := statusderiver.NewQueue(256)
	cl := mgr.GetClient()

	reconcilers := []interface {
		SetupWithManager(ctrl.Manager) error
	}{
		ingest.NewServerReconciler(cl, idx),
		ingest.NewServerAuthorizationReconciler(cl, idx),
		ingest.NewAuthorizationPolicyReconciler(cl, idx),
		ingest.NewMeshTLSAuthenticationReconciler(cl, idx, ci),
		ingest.NewNetworkAuthenticationReconciler(cl, idx),
		ingest.NewEgressNetworkReconciler(cl, idx),
		ingest.NewUnmeshedNetworkReconciler(cl, idx),
		&ingest.ConcurrencyLimitPolicyReconciler{Client: cl, Index: idx},
		&ingest.RateLimitPolicyReconciler{Client: cl, Index: idx},
		&ingest.HTTPRetryFilterReconciler{Client: cl, Store: retryFilters},
		&ingest.HTTPFailureInjectorFilterReconciler{Client: cl, Store: failureInjectorFilters},
		&ingest.PodReconciler{Client: cl, Index: idx},
		&ingest.ExternalWorkloadReconciler{Client: cl, Index: idx},
		&ingest.ServiceReconciler{Client: cl, Index: idx},
		&ingest.NamespaceReconciler{Client: cl, Index: idx},
		&ingest.HTTPRouteReconciler{Client: cl, Index: idx, Retry: retryFilters, FailureInjector: failureInjectorFilters, Queue: statusQueue},
		&ingest.GRPCRouteReconciler{Client: cl, Index: idx, Retry: retryFilters, FailureInjector: failureInjectorFilters, Queue: statusQueue},
		&ingest.TLSRouteReconciler{Client: cl, Index: idx, Queue: statusQueue},
		&ingest.TCPRouteReconciler{Client: cl, Index: idx, Queue: statusQueue},
	}
	for _, r := range reconcilers {
		if err := r.SetupWithManager(mgr); err != nil {
			setupLog.Error(err, "unable to create controller", "controller", fmt.Sprintf("%T", r))
			os.Exit(1)
		}
	}

	// Assembled for any future wire-transport front end (§6 explicitly
	// delegates protobuf/gRPC codegen); nothing in this binary dials it.
	_ = discovery.New(resolver.New(idx))

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	ctx := ctrl.SetupSignalHandler()
	g, ctx := errgroup.WithContext(ctx)

	writer := &ingest.StatusWriter{Client: cl, Queue: statusQueue}
	g.Go(func() error { return writer.Run(ctx) })

	setupLog.Info("starting manager")
	g.Go(func() error {
		return mgr.Start(ctx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		setupLog.Error(err, "unable to run")
		os.Exit(1)
	}
}

func buildClusterInfo(networksFlag, probeNetworksFlag, opaquePortsFlag, controlPlaneNamespace, dnsDomain, trustDomain, defaultPolicyFlag string, defaultDetectTimeout time.Duration, globalEgressNetworkNamespace string) (clusterinfo.ClusterInfo, error) {
	networks, err := parsePrefixes(networksFlag)
	if err != nil {
		return clusterinfo.ClusterInfo{}, fmt.Errorf("cluster-networks: %w", err)
	}
	probeNetworks, err := parsePrefixes(probeNetworksFlag)
	if err != nil {
		return clusterinfo.ClusterInfo{}, fmt.Errorf("probe-networks: %w", err)
	}
	opaquePorts, err := parsePorts(opaquePortsFlag)
	if err != nil {
		return clusterinfo.ClusterInfo{}, fmt.Errorf("default-opaque-ports: %w", err)
	}
	defaultPolicy, err := clusterinfo.ParseDefaultPolicy(defaultPolicyFlag)
	if err != nil {
		return clusterinfo.ClusterInfo{}, fmt.Errorf("default-policy: %w", err)
	}

	return clusterinfo.ClusterInfo{
		Networks:                     networks,
		ControlPlaneNamespace:        controlPlaneNamespace,
		DNSDomain:                    dnsDomain,
		TrustDomain:                  trustDomain,
		DefaultPolicy:                defaultPolicy,
		DefaultDetectTimeout:         defaultDetectTimeout,
		DefaultOpaquePorts:           opaquePorts,
		ProbeNetworks:                probeNetworks,
		GlobalEgressNetworkNamespace: globalEgressNetworkNamespace,
	}, nil
}

func parsePrefixes(s string) ([]netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]netip.Prefix, 0, len(parts))
	for _, p := range parts {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, prefix)
	}
	return out, nil
}

func parsePorts(s string) (map[int32]struct{}, error) {
	s = strings.TrimSpace(s)
	out := make(map[int32]struct{})
	if s == "" {
		return out, nil
	}
	for _, p := range strings.Split(s, ",") {
		var port int32
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &port); err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", p, err)
		}
		out[port] = struct{}{}
	}
	return out, nil
}
