// Package kube talks to the cluster API directly for the operations
// the original automation scraped out of orchestrator CLI tables.
package kube

import (
	"fmt"
	"strings"

	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/kubernetes"
)

// Client wraps a Kubernetes clientset scoped to a namespace.
type Client struct {
	clientset kubernetes.Interface
	namespace string
}

// NewClient builds a Client from kubeconfig flags. The namespace
// defaults to the kubeconfig context's namespace, falling back to
// "default".
func NewClient(configFlags *genericclioptions.ConfigFlags) (*Client, error) {
	restConfig, err := configFlags.ToRESTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build REST config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	namespace, _, err := configFlags.ToRawKubeConfigLoader().Namespace()
	if err != nil || namespace == "" {
		namespace = "default"
	}

	return &Client{clientset: clientset, namespace: namespace}, nil
}

// NewFromClientset wraps an existing clientset; tests use it with the
// fake clientset.
func NewFromClientset(clientset kubernetes.Interface, namespace string) *Client {
	if namespace == "" {
		namespace = "default"
	}
	return &Client{clientset: clientset, namespace: namespace}
}

// NormalizeName lowercases an application name and strips dashes,
// producing the name used for the exposed service.
func NormalizeName(app string) string {
	return strings.ReplaceAll(strings.ToLower(app), "-", "")
}
