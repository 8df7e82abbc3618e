package cli

import (
	"k8s.io/cli-runtime/pkg/genericclioptions"

	"github.com/kubedeploy/kubedeploy/internal/cloud"
	"github.com/kubedeploy/kubedeploy/internal/config"
	"github.com/kubedeploy/kubedeploy/internal/docker"
	"github.com/kubedeploy/kubedeploy/internal/execx"
	"github.com/kubedeploy/kubedeploy/internal/kube"
)

// Options carries the shared dependencies of every command. Tests
// substitute the runner and the cluster client factory.
type Options struct {
	ConfigFlags *genericclioptions.ConfigFlags
	Config      *config.Config
	Runner      execx.Runner

	// NewKubeClient builds the cluster API client; overridable so
	// tests can inject a fake clientset.
	NewKubeClient func() (*kube.Client, error)

	configFile string
}

// NewOptions returns Options wired for real execution.
func NewOptions() *Options {
	o := &Options{
		ConfigFlags: genericclioptions.NewConfigFlags(true),
		Runner:      execx.NewExec(),
	}
	o.NewKubeClient = func() (*kube.Client, error) {
		return kube.NewClient(o.ConfigFlags)
	}
	return o
}

// Cloud returns a platform CLI client.
func (o *Options) Cloud() *cloud.Client {
	return cloud.NewClient(o.Runner, o.Config)
}

// Docker returns a container engine client.
func (o *Options) Docker() *docker.Engine {
	return docker.NewEngine(o.Runner, o.Config)
}

// Kube returns the cluster API client.
func (o *Options) Kube() (*kube.Client, error) {
	return o.NewKubeClient()
}
