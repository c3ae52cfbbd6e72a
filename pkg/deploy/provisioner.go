// Package deploy implements the rolling deployer: ring-ordered, cohort-sized
// rollouts of a container image across data-plane instances, gated by a
// failure budget, with per-instance rollback to the last healthy image.
package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oikos-sh/brigade/pkg/config"
)

// Provisioner is the data-plane side of a rollout. Implementations pull
// images, swap containers, and report health.
type Provisioner interface {
	// PullImage pulls the image on the data plane and returns its digest
	// when the provisioner reports one.
	PullImage(ctx context.Context, image string) (digest string, err error)

	// Provision replaces the instance's container with one running image.
	Provision(ctx context.Context, containerName, subdomain, image string) error

	// CheckHealth probes the instance once. A nil error means healthy.
	CheckHealth(ctx context.Context, subdomain string) error

	// Deprovision removes the instance's container.
	Deprovision(ctx context.Context, containerName string) error
}

// HTTPProvisioner talks to the external provisioner service.
type HTTPProvisioner struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPProvisioner creates an HTTPProvisioner from deploy config.
func NewHTTPProvisioner(cfg *config.DeployConfig) *HTTPProvisioner {
	return &HTTPProvisioner{
		baseURL: cfg.ProvisionerBaseURL,
		token:   cfg.ProvisionerToken,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (p *HTTPProvisioner) PullImage(ctx context.Context, image string) (string, error) {
	var out struct {
		Digest string `json:"digest"`
	}
	err := p.post(ctx, "/pull", map[string]string{"image": image}, &out)
	if err != nil {
		return "", fmt.Errorf("image pull failed: %w", err)
	}
	return out.Digest, nil
}

func (p *HTTPProvisioner) Provision(ctx context.Context, containerName, subdomain, image string) error {
	err := p.post(ctx, "/provision", map[string]string{
		"container_name": containerName,
		"subdomain":      subdomain,
		"image":          image,
	}, nil)
	if err != nil {
		return fmt.Errorf("provision failed: %w", err)
	}
	return nil
}

func (p *HTTPProvisioner) CheckHealth(ctx context.Context, subdomain string) error {
	err := p.post(ctx, "/health", map[string]string{"subdomain": subdomain}, nil)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (p *HTTPProvisioner) Deprovision(ctx context.Context, containerName string) error {
	err := p.post(ctx, "/deprovision", map[string]string{"container_name": containerName}, nil)
	if err != nil {
		return fmt.Errorf("deprovision failed: %w", err)
	}
	return nil
}

func (p *HTTPProvisioner) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provisioner returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provisioner response: %w", err)
		}
	}
	return nil
}
