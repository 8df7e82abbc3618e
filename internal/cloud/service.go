package cloud

import (
	"context"

	"github.com/charmbracelet/log"
)

// CreateServiceInstance provisions a managed database service instance
// on the configured offering and plan.
func (c *Client) CreateServiceInstance(ctx context.Context, instance string) error {
	log.Info("creating service instance",
		"service", c.cfg.Database.Service, "plan", c.cfg.Database.Plan, "instance", instance)
	return c.run.Run(ctx, c.cfg.Platform.CLI,
		"service", "create", c.cfg.Database.Service, c.cfg.Database.Plan, instance)
}

// BindService binds the service instance into the cluster's default
// resource group so workloads receive its credentials.
func (c *Client) BindService(ctx context.Context, cluster, instance string) error {
	log.Info("binding service to cluster", "cluster", cluster, "instance", instance)
	return c.run.Run(ctx, c.cfg.Platform.CLI,
		"cs", "cluster-service-bind", cluster, "default", instance)
}

// UnbindService removes the service binding from the cluster.
func (c *Client) UnbindService(ctx context.Context, cluster, instance string) error {
	return c.run.Run(ctx, c.cfg.Platform.CLI,
		"cs", "cluster-service-unbind", cluster, "default", instance)
}

// DeleteServiceKeys removes the credentials created for the binding.
func (c *Client) DeleteServiceKeys(ctx context.Context, instance string) error {
	return c.run.Run(ctx, c.cfg.Platform.CLI,
		"service", "key-delete", "-f", instance, "Credentials-1")
}

// DeleteServiceInstance removes the service instance itself.
func (c *Client) DeleteServiceInstance(ctx context.Context, instance string) error {
	log.Info("deleting service instance", "instance", instance)
	return c.run.Run(ctx, c.cfg.Platform.CLI, "service", "delete", "-f", instance)
}
