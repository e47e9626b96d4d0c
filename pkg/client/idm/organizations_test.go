package idm

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/auth"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/rest"
	svcErrors "github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/test/mocks"
)

func fastRetryConfigForTests() rest.RetryConfig {
	return rest.RetryConfig{
		MaxRetries:   3,
		BaseInterval: time.Millisecond,
		MaxInterval:  2 * time.Millisecond,
	}
}

func newTestManager(t *testing.T, server mocks.IdentityAPIMock) OrganizationManager {
	t.Helper()
	manager, err := NewOrganizationManager(&IDMConfig{
		BaseURL: server.BaseURL() + mocks.APIPrefix,
	}, auth.NewStaticTokenProvider(server.GenerateNewAuthToken()))
	if err != nil {
		t.Fatalf("failed to build organization manager: %v", err)
	}
	return manager
}

func TestNewOrganizationManager(t *testing.T) {
	type args struct {
		config *IDMConfig
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "should succeed with a valid config",
			args: args{
				config: &IDMConfig{BaseURL: "https://idm.example.com"},
			},
			wantErr: false,
		},
		{
			name: "should fail with a nil config",
			args: args{
				config: nil,
			},
			wantErr: true,
		},
		{
			name: "should fail with an empty base URL",
			args: args{
				config: &IDMConfig{},
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			manager, err := NewOrganizationManager(tt.args.config, nil)
			if tt.wantErr {
				g.Expect(err).To(gomega.HaveOccurred())
				g.Expect(manager).To(gomega.BeNil())

				serviceError, ok := err.(*svcErrors.ServiceError)
				g.Expect(ok).To(gomega.Equal(true))
				g.Expect(serviceError.IsValidation()).To(gomega.Equal(true))
			} else {
				g.Expect(err).ToNot(gomega.HaveOccurred())
				g.Expect(manager).ToNot(gomega.BeNil())
			}
		})
	}
}

func TestOrganizationManager_CRUD(t *testing.T) {
	g := gomega.NewWithT(t)

	server := mocks.NewIdentityAPIMock()
	server.Start()
	defer server.Stop()
	manager := newTestManager(t, server)
	ctx := context.Background()

	// create
	created, err := manager.Create(ctx, api.Organization{"name": "acme", "display_name": "Acme Inc"})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(created.ID()).ToNot(gomega.BeEmpty())
	g.Expect(created.Name()).To(gomega.Equal("acme"))

	// get
	fetched, err := manager.Get(ctx, api.OrganizationParams{ID: created.ID()})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(fetched.ID()).To(gomega.Equal(created.ID()))
	g.Expect(fetched["display_name"]).To(gomega.Equal("Acme Inc"))

	// update
	updated, err := manager.Update(ctx, api.OrganizationParams{ID: created.ID()}, api.Organization{"name": "New name"})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(updated.Name()).To(gomega.Equal("New name"))
	g.Expect(updated["display_name"]).To(gomega.Equal("Acme Inc"))

	// list
	organizations, err := manager.GetAll(ctx, &api.PageParams{PerPage: 10, Page: 0})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(organizations).To(gomega.HaveLen(1))
	g.Expect(organizations[0].Name()).To(gomega.Equal("New name"))

	// delete
	err = manager.Delete(ctx, api.OrganizationParams{ID: created.ID()})
	g.Expect(err).ToNot(gomega.HaveOccurred())

	_, err = manager.Get(ctx, api.OrganizationParams{ID: created.ID()})
	g.Expect(err).To(gomega.HaveOccurred())
}

func TestOrganizationManager_GetAll_paging(t *testing.T) {
	g := gomega.NewWithT(t)

	server := mocks.NewIdentityAPIMock()
	server.SeedOrganization(api.Organization{"name": "acme"})
	server.SeedOrganization(api.Organization{"name": "globex"})
	server.SeedOrganization(api.Organization{"name": "initech"})
	server.Start()
	defer server.Stop()
	manager := newTestManager(t, server)

	firstPage, err := manager.GetAll(context.Background(), &api.PageParams{PerPage: 2, Page: 0})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(firstPage).To(gomega.HaveLen(2))

	secondPage, err := manager.GetAll(context.Background(), &api.PageParams{PerPage: 2, Page: 1})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(secondPage).To(gomega.HaveLen(1))
	g.Expect(secondPage[0].Name()).To(gomega.Equal("initech"))

	// nil page params list with the remote defaults
	everything, err := manager.GetAll(context.Background(), nil)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(everything).To(gomega.HaveLen(3))
}

func TestOrganizationManager_remoteErrorsSurfacedUnchanged(t *testing.T) {
	g := gomega.NewWithT(t)

	server := mocks.NewIdentityAPIMock()
	server.Start()
	defer server.Stop()
	manager := newTestManager(t, server)

	_, err := manager.Get(context.Background(), api.OrganizationParams{ID: "org_missing"})
	g.Expect(err).To(gomega.HaveOccurred())

	apiError, ok := err.(*svcErrors.APIError)
	g.Expect(ok).To(gomega.Equal(true))
	g.Expect(apiError.StatusCode).To(gomega.Equal(http.StatusNotFound))
	g.Expect(apiError.Code).To(gomega.Equal("inexistent_organization"))
}

func TestOrganizationManager_retriesServerErrors(t *testing.T) {
	g := gomega.NewWithT(t)

	server := mocks.NewIdentityAPIMock()
	id := server.SeedOrganization(api.Organization{"name": "acme"})
	server.Start()
	defer server.Stop()

	manager, err := NewOrganizationManager(&IDMConfig{
		BaseURL: server.BaseURL() + mocks.APIPrefix,
		Retry:   fastRetryConfigForTests(),
	}, auth.NewStaticTokenProvider(server.GenerateNewAuthToken()))
	g.Expect(err).ToNot(gomega.HaveOccurred())

	server.FailNextRequestsWith(http.StatusServiceUnavailable, `{"message":"try again"}`, 2)

	organization, err := manager.Get(context.Background(), api.OrganizationParams{ID: id})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(organization.Name()).To(gomega.Equal("acme"))
}
