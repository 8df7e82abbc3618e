// Package docker wraps the container engine CLI.
package docker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/kubedeploy/kubedeploy/internal/config"
	"github.com/kubedeploy/kubedeploy/internal/execx"
)

// Engine invokes the container engine CLI through a Runner.
type Engine struct {
	run execx.Runner
	cfg *config.Config
}

func NewEngine(run execx.Runner, cfg *config.Config) *Engine {
	return &Engine{run: run, cfg: cfg}
}

// Build builds the image from the build context in the working
// directory.
func (e *Engine) Build(ctx context.Context, image string) error {
	log.Info("building image", "image", image)
	return e.run.Run(ctx, e.cfg.DockerCLI, "build", "-t", image, ".")
}

// Run starts the container detached with the application port mapped
// to the host.
func (e *Engine) Run(ctx context.Context, image string) error {
	port := fmt.Sprintf("%d:%d", e.cfg.AppPort, e.cfg.AppPort)
	log.Info("running container", "image", image, "port", port)
	return e.run.Run(ctx, e.cfg.DockerCLI, "run", "--name", image, "-d", "-p", port, image)
}

// Stop force-removes the container. A missing container is not an
// error; the removal failure is suppressed.
func (e *Engine) Stop(ctx context.Context, name string) error {
	if err := e.run.Run(ctx, e.cfg.DockerCLI, "rm", "-f", name); err != nil {
		log.Debug("container removal failed, ignoring", "name", name, "error", err)
	}
	return nil
}

// RegistryTag returns the registry-qualified tag for an image under a
// registry namespace.
func (e *Engine) RegistryTag(image, namespace string) string {
	return fmt.Sprintf("%s/%s/%s", e.cfg.Registry.Host, namespace, image)
}

// Push tags the local image with its registry-qualified name and
// pushes it.
func (e *Engine) Push(ctx context.Context, image, namespace string) (string, error) {
	tag := e.RegistryTag(image, namespace)

	log.Info("tagging image", "image", image, "tag", tag)
	if err := e.run.Run(ctx, e.cfg.DockerCLI, "tag", image, tag); err != nil {
		return "", err
	}

	log.Info("pushing image", "tag", tag)
	if err := e.run.Run(ctx, e.cfg.DockerCLI, "push", tag); err != nil {
		return "", err
	}
	return tag, nil
}

// PS lists the running containers.
func (e *Engine) PS(ctx context.Context) error {
	return e.run.Run(ctx, e.cfg.DockerCLI, "ps")
}
