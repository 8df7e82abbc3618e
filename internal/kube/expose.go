package kube

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Expose creates a NodePort service for the deployment, bound to the
// worker's external IP on the application port. An existing service
// with the same name is left in place.
func (c *Client) Expose(ctx context.Context, app, externalIP string, port int32) (*corev1.Service, error) {
	name := NormalizeName(app)

	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: c.namespace,
			Labels:    map[string]string{"run": app},
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeNodePort,
			Selector: map[string]string{"run": app},
			Ports: []corev1.ServicePort{
				{
					Port:       port,
					TargetPort: intstr.FromInt32(port),
					Protocol:   corev1.ProtocolTCP,
				},
			},
			ExternalIPs: []string{externalIP},
		},
	}

	created, err := c.clientset.CoreV1().Services(c.namespace).Create(ctx, svc, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		log.Info("service already exposed", "name", name)
		return c.clientset.CoreV1().Services(c.namespace).Get(ctx, name, metav1.GetOptions{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to expose %s: %w", app, err)
	}

	log.Info("exposed deployment", "name", name, "externalIP", externalIP, "port", port)
	return created, nil
}

// DeleteService removes the exposed service. A missing service is not
// an error.
func (c *Client) DeleteService(ctx context.Context, app string) error {
	name := NormalizeName(app)
	err := c.clientset.CoreV1().Services(c.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if apierrors.IsNotFound(err) {
		log.Debug("service already gone", "name", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", name, err)
	}
	return nil
}

// DeleteDeployment removes the application deployment. A missing
// deployment is not an error.
func (c *Client) DeleteDeployment(ctx context.Context, app string) error {
	err := c.clientset.AppsV1().Deployments(c.namespace).Delete(ctx, app, metav1.DeleteOptions{})
	if apierrors.IsNotFound(err) {
		log.Debug("deployment already gone", "name", app)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete deployment %s: %w", app, err)
	}
	return nil
}
