package idm

import (
	"context"
	"strings"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/auth"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/rest"
)

const organizationsPath = "/organizations/:id"

// OrganizationManager provides CRUD access to the organizations collection
// of the identity-management API. Every operation delegates to the
// underlying REST resource client; failures from the transport and retry
// layers are surfaced unchanged.
//
//go:generate moq -out organizations_moq.go . OrganizationManager
type OrganizationManager interface {
	Create(ctx context.Context, organization api.Organization) (api.Organization, error)
	GetAll(ctx context.Context, page *api.PageParams) ([]api.Organization, error)
	Get(ctx context.Context, params api.OrganizationParams) (api.Organization, error)
	Update(ctx context.Context, params api.OrganizationParams, patch api.Organization) (api.Organization, error)
	Delete(ctx context.Context, params api.OrganizationParams) error
}

type organizationManager struct {
	config   *IDMConfig
	resource rest.Resource
}

var _ OrganizationManager = &organizationManager{}

// NewOrganizationManager validates the config, builds a resource client
// bound to `<baseUrl>/organizations/:id` and wraps it in the retry
// decorator. When provider is nil and the config carries client
// credentials, a client_credentials token provider is built from it.
func NewOrganizationManager(config *IDMConfig, provider auth.TokenProvider) (OrganizationManager, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	if provider == nil && config.hasClientCredentials() {
		provider = auth.NewClientCredentialsProvider(&auth.ClientCredentialsConfig{
			TokenEndpointURI: config.TokenEndpointURI,
			ClientID:         config.ClientID,
			ClientSecret:     config.ClientSecret,
			Scope:            config.Scope,
		})
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	resource, err := rest.NewResourceClient(baseURL+organizationsPath, rest.ClientOptions{
		Headers:            config.Headers,
		Timeout:            config.Timeout,
		Debug:              config.Debug,
		InsecureSkipVerify: config.InsecureSkipVerify,
	}, provider)
	if err != nil {
		return nil, err
	}

	return &organizationManager{
		config:   config,
		resource: rest.NewRetryClient(resource, config.Retry),
	}, nil
}

func (m *organizationManager) Create(ctx context.Context, organization api.Organization) (api.Organization, error) {
	var created api.Organization
	if err := m.resource.Create(ctx, organization, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (m *organizationManager) GetAll(ctx context.Context, page *api.PageParams) ([]api.Organization, error) {
	var organizations []api.Organization
	if err := m.resource.GetAll(ctx, page.Query(), &organizations); err != nil {
		return nil, err
	}
	return organizations, nil
}

func (m *organizationManager) Get(ctx context.Context, params api.OrganizationParams) (api.Organization, error) {
	var organization api.Organization
	if err := m.resource.Get(ctx, rest.Params{"id": params.ID}, &organization); err != nil {
		return nil, err
	}
	return organization, nil
}

func (m *organizationManager) Update(ctx context.Context, params api.OrganizationParams, patch api.Organization) (api.Organization, error) {
	var updated api.Organization
	if err := m.resource.Patch(ctx, rest.Params{"id": params.ID}, patch, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *organizationManager) Delete(ctx context.Context, params api.OrganizationParams) error {
	return m.resource.Delete(ctx, rest.Params{"id": params.ID})
}
