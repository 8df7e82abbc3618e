// Package cloud wraps the cloud platform CLI: session management,
// cluster lifecycle, the container registry, and managed service
// instances.
package cloud

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/kubedeploy/kubedeploy/internal/config"
	"github.com/kubedeploy/kubedeploy/internal/execx"
)

// Client invokes the platform CLI through a Runner.
type Client struct {
	run execx.Runner
	cfg *config.Config
}

func NewClient(run execx.Runner, cfg *config.Config) *Client {
	return &Client{run: run, cfg: cfg}
}

// InstallTools fetches the platform CLI installer and installs the
// cluster-service plugin. Neither step is verified, matching the
// historical behavior.
func (c *Client) InstallTools(ctx context.Context) error {
	log.Info("installing platform CLI", "installer", c.cfg.Platform.Installer)
	if err := c.run.Run(ctx, "sh", "-c", "curl -fsSL "+c.cfg.Platform.Installer+" | sh"); err != nil {
		return err
	}

	log.Info("installing plugin", "plugin", c.cfg.Platform.Plugin, "repo", c.cfg.Platform.PluginRepo)
	return c.run.Run(ctx, c.cfg.Platform.CLI,
		"plugin", "install", c.cfg.Platform.Plugin, "-r", c.cfg.Platform.PluginRepo)
}

// Login authenticates via SSO and targets the application runtime.
func (c *Client) Login(ctx context.Context) error {
	log.Info("logging in", "api", c.cfg.Platform.API)
	if err := c.run.Run(ctx, c.cfg.Platform.CLI, "login", "--sso", "-a", c.cfg.Platform.API); err != nil {
		return err
	}
	return c.run.Run(ctx, c.cfg.Platform.CLI, "target", "--cf")
}
