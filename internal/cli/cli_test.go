package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/kubedeploy/kubedeploy/internal/config"
	"github.com/kubedeploy/kubedeploy/internal/execx"
	"github.com/kubedeploy/kubedeploy/internal/kube"
)

func newTestRoot(rec *execx.Recorder, objects ...runtime.Object) (*cobra.Command, *bytes.Buffer) {
	cfg := config.Default()
	cfg.Poll.Interval = time.Millisecond
	cfg.Poll.Attempts = 3

	opts := &Options{
		ConfigFlags: genericclioptions.NewConfigFlags(true),
		Config:      cfg,
		Runner:      rec,
	}
	opts.NewKubeClient = func() (*kube.Client, error) {
		return kube.NewFromClientset(fake.NewClientset(objects...), "default"), nil
	}

	cmd := newRootCommand(opts)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestMissingArgumentsInvokeNoTools(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "setup",
			args:    []string{"setup", "onlycluster"},
			message: "Error: setup failed, cluster name or namespace not provided.",
		},
		{
			name:    "build",
			args:    []string{"build"},
			message: "Error: run failed, docker name not provided.",
		},
		{
			name:    "run",
			args:    []string{"run"},
			message: "Error: run failed, docker name not provided.",
		},
		{
			name:    "stop",
			args:    []string{"stop"},
			message: "Error: stop failed, docker name not provided.",
		},
		{
			name:    "push",
			args:    []string{"push", "onlyimage"},
			message: "Error: push failed, docker name or namespace not provided.",
		},
		{
			name:    "create-db",
			args:    []string{"create-db", "onlycluster"},
			message: "Error: create_db failed, cluster or database name not provided.",
		},
		{
			name:    "get-ip",
			args:    []string{"get-ip"},
			message: "Error: get_ip failed, cluster name not provided.",
		},
		{
			name:    "deploy",
			args:    []string{"deploy"},
			message: "Error: deploy failed, application name not provided.",
		},
		{
			name:    "populate-db",
			args:    []string{"populate-db"},
			message: "Error: populate_db failed, application URL not provided.",
		},
		{
			name:    "delete",
			args:    []string{"delete", "cluster", "instance"},
			message: "Error: delete failed, cluster, database or namespace not provided.",
		},
		{
			name:    "all",
			args:    []string{"all", "cluster", "instance", "image"},
			message: "Error: all failed, cluster, database, docker name or namespace not provided.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := execx.NewRecorder()
			cmd, buf := newTestRoot(rec)
			cmd.SetArgs(tt.args)

			// Missing arguments are reported but exit successfully,
			// matching the historical behavior.
			require.NoError(t, cmd.Execute())
			assert.Contains(t, buf.String(), tt.message)
			assert.Empty(t, rec.Calls(), "no external tool may be invoked")
		})
	}
}

func TestUnknownActionPrintsUsage(t *testing.T) {
	rec := execx.NewRecorder()
	cmd, buf := newTestRoot(rec)
	cmd.SetArgs([]string{"frobnicate"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Usage:")
	assert.Empty(t, rec.Calls())
}

func TestNoActionPrintsUsage(t *testing.T) {
	rec := execx.NewRecorder()
	cmd, buf := newTestRoot(rec)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Usage:")
	assert.Empty(t, rec.Calls())
}

func TestPushTagsThenPushes(t *testing.T) {
	rec := execx.NewRecorder()
	cmd, _ := newTestRoot(rec)
	cmd.SetArgs([]string{"push", "myimage", "myns"})

	require.NoError(t, cmd.Execute())

	lines := rec.Lines()
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "docker tag myimage registry.ng.bluemix.net/myns/myimage", lines[0])
	assert.Equal(t, "docker push registry.ng.bluemix.net/myns/myimage", lines[1])
}

func TestSetupSkipsCreateWhenClusterExists(t *testing.T) {
	t.Setenv("KUBECONFIG", "")

	rec := execx.NewRecorder()
	rec.Queue("bx cs clusters", "mycluster   abc123  normal   1 day ago\n")
	rec.Queue("bx cs workers mycluster", "ID   Public IP   Private IP   Machine Type   State   Status\nw1   1.2.3.4   10.0.0.1   free   normal   Ready\n")
	rec.Queue("bx cs cluster-config mycluster", "export KUBECONFIG=/tmp/kube-config-hou02-mycluster.yml\n")

	cmd, _ := newTestRoot(rec)
	cmd.SetArgs([]string{"setup", "mycluster", "myns"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"bx cr login",
		"bx cs clusters",
		"bx cr namespace-add myns",
		"bx cs workers mycluster",
		"bx cs cluster-config mycluster",
	}, rec.Lines())
}

func TestSetupCreatesAndWaitsWhenClusterAbsent(t *testing.T) {
	t.Setenv("KUBECONFIG", "")

	rec := execx.NewRecorder()
	rec.Queue("bx cs clusters", "other   def456  normal   1 day ago\n")
	rec.Queue("bx cs clusters", "mycluster   abc123  pending   1 minute ago\n")
	rec.Queue("bx cs clusters", "mycluster   abc123  normal    2 minutes ago\n")
	rec.Queue("bx cs workers mycluster", "ID   Public IP   Private IP   Machine Type   State   Status\nw1   1.2.3.4   10.0.0.1   free   normal   Ready\n")
	rec.Queue("bx cs cluster-config mycluster", "export KUBECONFIG=/tmp/kube-config-hou02-mycluster.yml\n")

	cmd, _ := newTestRoot(rec)
	cmd.SetArgs([]string{"setup", "mycluster", "myns"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"bx cr login",
		"bx cs clusters",
		"bx cs cluster-create --name mycluster",
		"bx cs clusters",
		"bx cs clusters",
		"bx cr namespace-add myns",
		"bx cs workers mycluster",
		"bx cs cluster-config mycluster",
	}, rec.Lines())
}

func TestDeleteRunsStepsInOrder(t *testing.T) {
	rec := execx.NewRecorder()
	cmd, _ := newTestRoot(rec)
	cmd.SetArgs([]string{"delete", "mycluster", "mydb", "myns"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"bx cs cluster-service-unbind mycluster default mydb",
		"bx service key-delete -f mydb Credentials-1",
		"bx service delete -f mydb",
		"bx cs cluster-rm mycluster",
	}, rec.Lines())
}

func TestGetIPPrintsComposedURL(t *testing.T) {
	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: "worker-1"},
		Status: corev1.NodeStatus{
			Addresses: []corev1.NodeAddress{
				{Type: corev1.NodeExternalIP, Address: "173.193.99.100"},
			},
		},
	}
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "mycluster", Namespace: "default"},
		Spec: corev1.ServiceSpec{
			Ports: []corev1.ServicePort{{Port: 8080, NodePort: 30080}},
		},
	}

	rec := execx.NewRecorder()
	cmd, buf := newTestRoot(rec, node, svc)
	cmd.SetArgs([]string{"get-ip", "mycluster"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "http://173.193.99.100:30080")
}

func TestAllRunsDocumentedOrder(t *testing.T) {
	t.Setenv("KUBECONFIG", "")

	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: "worker-1"},
		Status: corev1.NodeStatus{
			Addresses: []corev1.NodeAddress{
				{Type: corev1.NodeExternalIP, Address: "173.193.99.100"},
			},
		},
	}
	// The exposed service pre-exists with an assigned node port; the
	// deploy step finds it and get-ip reads the port from it.
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "mycluster", Namespace: "default"},
		Spec: corev1.ServiceSpec{
			Type:  corev1.ServiceTypeNodePort,
			Ports: []corev1.ServicePort{{Port: 8080, NodePort: 30080}},
		},
	}

	rec := execx.NewRecorder()
	rec.Queue("bx cs clusters", "mycluster   abc123  normal   1 day ago\n")
	rec.Queue("bx cs workers mycluster", "ID   Public IP   Private IP   Machine Type   State   Status\nw1   1.2.3.4   10.0.0.1   free   normal   Ready\n")
	rec.Queue("bx cs cluster-config mycluster", "export KUBECONFIG=/tmp/kube-config-hou02-mycluster.yml\n")

	cmd, buf := newTestRoot(rec, node, svc)
	cmd.SetArgs([]string{"all", "mycluster", "mydb", "mycluster", "myns"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"sh -c curl -fsSL https://clis.ng.bluemix.net/install/linux | sh",
		"bx plugin install container-service -r Bluemix",
		"bx login --sso -a https://api.ng.bluemix.net",
		"bx target --cf",
		"bx cr login",
		"bx cs clusters",
		"bx cr namespace-add myns",
		"bx cs workers mycluster",
		"bx cs cluster-config mycluster",
		"docker build -t mycluster .",
		"docker tag mycluster registry.ng.bluemix.net/myns/mycluster",
		"docker push registry.ng.bluemix.net/myns/mycluster",
		"docker ps",
		"bx cr images",
		"kubectl apply -f manifest.yml",
		"bx service create cloudantNoSQLDB Lite mydb",
		"bx cs cluster-service-bind mycluster default mydb",
	}, rec.Lines())

	assert.Contains(t, buf.String(), "http://173.193.99.100:30080")
}

func TestAllSkipsRemainingStepsAfterFailure(t *testing.T) {
	t.Setenv("KUBECONFIG", "")

	rec := execx.NewRecorder()
	rec.Queue("bx cs clusters", "mycluster   abc123  normal   1 day ago\n")
	rec.Queue("bx cs workers mycluster", "ID   Public IP   Private IP   Machine Type   State   Status\nw1   1.2.3.4   10.0.0.1   free   normal   Ready\n")
	rec.Queue("bx cs cluster-config mycluster", "export KUBECONFIG=/tmp/kube-config-hou02-mycluster.yml\n")
	rec.Fail("docker build", assert.AnError)

	cmd, _ := newTestRoot(rec)
	cmd.SetArgs([]string{"all", "mycluster", "mydb", "mycluster", "myns"})

	err := cmd.Execute()
	require.Error(t, err)

	// Nothing after the failed build step may run.
	for _, line := range rec.Lines() {
		assert.NotContains(t, line, "docker tag")
		assert.NotContains(t, line, "service create")
	}
}
