package ingest

import (
	"context"
	"sync"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// FailureInjectorFilterStore mirrors RetryFilterStore: it holds the latest
// HTTPFailureInjectorFilterSpec per namespace/name, read by the route
// reconcilers' routebinder.FailureInjectorFilterLookup closure.
// HTTPFailureInjectorFilter never enters internal/index for the same
// reason HTTPRetryFilter doesn't: it's consulted only while building a
// RouteBinding.
type FailureInjectorFilterStore struct {
	mu    sync.RWMutex
	specs map[string]map[string]resourcespecs.HTTPFailureInjectorFilterSpec
}

func NewFailureInjectorFilterStore() *FailureInjectorFilterStore {
	return &FailureInjectorFilterStore{specs: make(map[string]map[string]resourcespecs.HTTPFailureInjectorFilterSpec)}
}

func (s *FailureInjectorFilterStore) put(spec resourcespecs.HTTPFailureInjectorFilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName, ok := s.specs[spec.Namespace]
	if !ok {
		byName = make(map[string]resourcespecs.HTTPFailureInjectorFilterSpec)
		s.specs[spec.Namespace] = byName
	}
	byName[spec.Name] = spec
}

func (s *FailureInjectorFilterStore) delete(namespace, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.specs[namespace], name)
}

// Lookup satisfies internal/routebinder.FailureInjectorFilterLookup.
func (s *FailureInjectorFilterStore) Lookup(namespace, name string) (resourcespecs.HTTPFailureInjectorFilterSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.specs[namespace][name]
	return spec, ok
}

type HTTPFailureInjectorFilterReconciler struct {
	client.Client
	Store *FailureInjectorFilterStore
}

func (r *HTTPFailureInjectorFilterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var obj policyv1alpha1.HTTPFailureInjectorFilter
	if err := r.Client.Get(ctx, req.NamespacedName, &obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.Store.delete(req.Namespace, req.Name)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec, err := resourcespecs.ParseHTTPFailureInjectorFilter(&obj)
	if err != nil {
		log.FromContext(ctx).Error(err, "rejecting resource", "reconciler", "httpfailureinjectorfilter")
		return ctrl.Result{}, nil
	}
	r.Store.put(spec)
	return ctrl.Result{}, nil
}

func (r *HTTPFailureInjectorFilterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&policyv1alpha1.HTTPFailureInjectorFilter{}).
		Named("httpfailureinjectorfilter").
		Complete(r)
}
