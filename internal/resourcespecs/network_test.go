package resourcespecs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
)

func TestParseNetwork_ExceptMustBeStrictlyContained(t *testing.T) {
	t.Parallel()

	m, errs := parseNetwork(policyv1alpha1.Network{
		CIDR:   "10.0.0.0/8",
		Except: []string{"10.1.0.0/16"},
	}, field.NewPath("spec"))
	require.Empty(t, errs)
	require.Len(t, m.Except, 1)

	_, errs = parseNetwork(policyv1alpha1.Network{
		CIDR:   "10.0.0.0/8",
		Except: []string{"10.0.0.0/8"},
	}, field.NewPath("spec"))
	require.NotEmpty(t, errs)

	_, errs = parseNetwork(policyv1alpha1.Network{
		CIDR:   "10.0.0.0/8",
		Except: []string{"192.168.0.0/16"},
	}, field.NewPath("spec"))
	require.NotEmpty(t, errs)
}

func TestParseNetworkAuthentication_RejectsEmptyNetworks(t *testing.T) {
	t.Parallel()

	_, err := ParseNetworkAuthentication(&policyv1alpha1.NetworkAuthentication{})
	require.Error(t, err)
}

func TestParseEgressNetwork_RejectsEmptyNetworks(t *testing.T) {
	t.Parallel()

	_, err := ParseEgressNetwork(&policyv1alpha1.EgressNetwork{})
	require.Error(t, err)
}
