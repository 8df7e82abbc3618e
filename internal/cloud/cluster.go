package cloud

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
)

var (
	// ErrClusterNotFound is returned when the named cluster does not
	// appear in the cluster list.
	ErrClusterNotFound = errors.New("cluster not found")

	errStillPending = errors.New("cluster is still pending")
)

// Worker is one row of the cluster worker list.
type Worker struct {
	ID        string
	PublicIP  string
	PrivateIP string
	Machine   string
	State     string
	Status    string
}

// ClusterExists reports whether the named cluster appears in the
// cluster list.
func (c *Client) ClusterExists(ctx context.Context, name string) (bool, error) {
	out, err := c.run.Output(ctx, c.cfg.Platform.CLI, "cs", "clusters")
	if err != nil {
		return false, err
	}
	return clusterRow(out, name) != "", nil
}

// CreateCluster provisions a new free-tier cluster.
func (c *Client) CreateCluster(ctx context.Context, name string) error {
	log.Info("creating cluster", "name", name)
	return c.run.Run(ctx, c.cfg.Platform.CLI, "cs", "cluster-create", "--name", name)
}

// WaitForCluster polls the cluster list until the named cluster's row
// no longer carries the pending marker. The wait is bounded by the
// configured attempt count and honors context cancellation; when the
// attempts are exhausted the last pending error surfaces.
func (c *Client) WaitForCluster(ctx context.Context, name string) error {
	return retry.Do(
		func() error {
			out, err := c.run.Output(ctx, c.cfg.Platform.CLI, "cs", "clusters")
			if err != nil {
				return err
			}

			row := clusterRow(out, name)
			if row == "" {
				return ErrClusterNotFound
			}
			if strings.Contains(row, "pending") {
				log.Info("cluster is still provisioning", "name", name)
				return errStillPending
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.Poll.Attempts),
		retry.Delay(c.cfg.Poll.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

// RemoveCluster deletes the cluster and its workers.
func (c *Client) RemoveCluster(ctx context.Context, name string) error {
	log.Info("removing cluster", "name", name)
	return c.run.Run(ctx, c.cfg.Platform.CLI, "cs", "cluster-rm", name)
}

// Workers returns the cluster's worker nodes.
func (c *Client) Workers(ctx context.Context, cluster string) ([]Worker, error) {
	out, err := c.run.Output(ctx, c.cfg.Platform.CLI, "cs", "workers", cluster)
	if err != nil {
		return nil, err
	}
	return parseWorkers(out), nil
}

// WorkerPublicIP returns the public IP of the cluster's first worker
// with one assigned.
func (c *Client) WorkerPublicIP(ctx context.Context, cluster string) (string, error) {
	workers, err := c.Workers(ctx, cluster)
	if err != nil {
		return "", err
	}
	for _, w := range workers {
		if w.PublicIP != "" && w.PublicIP != "-" {
			return w.PublicIP, nil
		}
	}
	return "", fmt.Errorf("no worker with a public IP in cluster %s", cluster)
}

// ExportClusterConfig fetches the cluster's kube config and exports
// KUBECONFIG into this process so subsequent orchestrator calls target
// the cluster.
func (c *Client) ExportClusterConfig(ctx context.Context, cluster string) (string, error) {
	out, err := c.run.Output(ctx, c.cfg.Platform.CLI, "cs", "cluster-config", cluster)
	if err != nil {
		return "", err
	}

	path := parseKubeconfigPath(out)
	if path == "" {
		return "", fmt.Errorf("no KUBECONFIG export found in cluster-config output for %s", cluster)
	}

	if err := os.Setenv("KUBECONFIG", path); err != nil {
		return "", fmt.Errorf("failed to export KUBECONFIG: %w", err)
	}

	log.Info("exported kube config", "path", path)
	return path, nil
}

// clusterRow returns the cluster list row whose first column matches
// name, or empty when absent.
func clusterRow(out, name string) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == name {
			return line
		}
	}
	return ""
}

// parseWorkers turns the tabular worker list into typed rows. Header
// and status lines are skipped; rows with fewer columns than the table
// defines are ignored rather than guessed at.
func parseWorkers(out string) []Worker {
	var workers []Worker

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "OK" {
			continue
		}
		if strings.HasPrefix(line, "ID") || strings.HasPrefix(line, "Listing") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}

		workers = append(workers, Worker{
			ID:        fields[0],
			PublicIP:  fields[1],
			PrivateIP: fields[2],
			Machine:   fields[3],
			State:     fields[4],
			Status:    fields[5],
		})
	}
	return workers
}

// parseKubeconfigPath extracts the path from the "export KUBECONFIG=…"
// line the platform CLI prints after downloading the cluster config.
func parseKubeconfigPath(out string) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "export KUBECONFIG="); ok {
			return strings.Trim(rest, `"'`)
		}
	}
	return ""
}
