package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NodeExternalIP returns the external IP of the first node that
// advertises one.
func (c *Client) NodeExternalIP(ctx context.Context) (string, error) {
	nodes, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to list nodes: %w", err)
	}

	for _, node := range nodes.Items {
		for _, addr := range node.Status.Addresses {
			if addr.Type == corev1.NodeExternalIP && addr.Address != "" {
				return addr.Address, nil
			}
		}
	}
	return "", fmt.Errorf("no node with an external IP")
}

// ServiceNodePort returns the node port the application's service is
// exposed on.
func (c *Client) ServiceNodePort(ctx context.Context, app string) (int32, error) {
	name := NormalizeName(app)

	svc, err := c.clientset.CoreV1().Services(c.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get service %s: %w", name, err)
	}

	for _, port := range svc.Spec.Ports {
		if port.NodePort != 0 {
			return port.NodePort, nil
		}
	}
	return 0, fmt.Errorf("service %s has no node port", name)
}

// AppURL composes the public endpoint from a worker IP and node port.
func AppURL(ip string, port int32) string {
	return fmt.Sprintf("http://%s:%d", ip, port)
}
