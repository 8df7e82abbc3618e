/*
kubedeploy automates deploying a containerized web application to a
managed Kubernetes cluster.

It wraps the cloud platform CLI, the container engine CLI, and the
cluster orchestrator to provision a cluster, build and push the image,
bind a managed database service, and expose the application's public
endpoint. Where the Kubernetes API is directly reachable it is used
instead of scraping orchestrator CLI output.
*/
package main
