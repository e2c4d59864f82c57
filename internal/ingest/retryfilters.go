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

// RetryFilterStore holds the latest HTTPRetryFilterSpec per
// namespace/name, read by the route reconcilers' routebinder.RetryFilterLookup
// closure. HTTPRetryFilter never enters internal/index: it's consulted
// only while building a RouteBinding, never joined against a pod or
// Service on its own.
type RetryFilterStore struct {
	mu    sync.RWMutex
	specs map[string]map[string]resourcespecs.HTTPRetryFilterSpec
}

func NewRetryFilterStore() *RetryFilterStore {
	return &RetryFilterStore{specs: make(map[string]map[string]resourcespecs.HTTPRetryFilterSpec)}
}

func (s *RetryFilterStore) put(spec resourcespecs.HTTPRetryFilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName, ok := s.specs[spec.Namespace]
	if !ok {
		byName = make(map[string]resourcespecs.HTTPRetryFilterSpec)
		s.specs[spec.Namespace] = byName
	}
	byName[spec.Name] = spec
}

func (s *RetryFilterStore) delete(namespace, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.specs[namespace], name)
}

// Lookup satisfies internal/routebinder.RetryFilterLookup.
func (s *RetryFilterStore) Lookup(namespace, name string) (resourcespecs.HTTPRetryFilterSpec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.specs[namespace][name]
	return spec, ok
}

type HTTPRetryFilterReconciler struct {
	client.Client
	Store *RetryFilterStore
}

func (r *HTTPRetryFilterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var obj policyv1alpha1.HTTPRetryFilter
	if err := r.Client.Get(ctx, req.NamespacedName, &obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.Store.delete(req.Namespace, req.Name)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec, err := resourcespecs.ParseHTTPRetryFilter(&obj)
	if err != nil {
		log.FromContext(ctx).Error(err, "rejecting resource", "reconciler", "httpretryfilter")
		return ctrl.Result{}, nil
	}
	r.Store.put(spec)
	return ctrl.Result{}, nil
}

func (r *HTTPRetryFilterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&policyv1alpha1.HTTPRetryFilter{}).
		Named("httpretryfilter").
		Complete(r)
}
