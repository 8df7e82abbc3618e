package cloud

import (
	"context"

	"github.com/charmbracelet/log"
)

// RegistryLogin authenticates the local container engine against the
// platform registry.
func (c *Client) RegistryLogin(ctx context.Context) error {
	return c.run.Run(ctx, c.cfg.Platform.CLI, "cr", "login")
}

// AddRegistryNamespace creates the registry namespace images are
// pushed under. Adding an existing namespace is a no-op on the
// platform side.
func (c *Client) AddRegistryNamespace(ctx context.Context, namespace string) error {
	log.Info("adding registry namespace", "namespace", namespace)
	return c.run.Run(ctx, c.cfg.Platform.CLI, "cr", "namespace-add", namespace)
}

// RegistryImages lists the images stored in the platform registry.
func (c *Client) RegistryImages(ctx context.Context) error {
	return c.run.Run(ctx, c.cfg.Platform.CLI, "cr", "images")
}
