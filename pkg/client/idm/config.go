package idm

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/rest"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/shared"
)

// IDMConfig configures access to the identity-management API. BaseURL is the
// only required field; everything else is forwarded to the underlying REST
// client and retry decorator as-is.
type IDMConfig struct {
	BaseURL            string            `json:"base_url"`
	Headers            map[string]string `json:"headers"`
	Debug              bool              `json:"debug"`
	InsecureSkipVerify bool              `json:"insecure-skip-verify"`
	Timeout            time.Duration     `json:"timeout"`

	TokenEndpointURI string `json:"token_endpoint_uri"`
	ClientID         string `json:"client-id"`
	ClientIDFile     string `json:"client-id_file"`
	ClientSecret     string `json:"client-secret"`
	ClientSecretFile string `json:"client-secret_file"`
	Scope            string `json:"scope"`

	Retry rest.RetryConfig `json:"retry"`
}

func NewIDMConfig() *IDMConfig {
	return &IDMConfig{
		ClientIDFile:     "secrets/idm-service.clientId",
		ClientSecretFile: "secrets/idm-service.clientSecret",
		Debug:            false,
		Timeout:          240 * time.Second,
	}
}

func (c *IDMConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BaseURL, "idm-base-url", c.BaseURL, "The base URL of the identity-management API")
	fs.StringVar(&c.TokenEndpointURI, "idm-token-endpoint-uri", c.TokenEndpointURI, "Token endpoint used to obtain access tokens with the client_credentials grant")
	fs.StringVar(&c.ClientIDFile, "idm-client-id-file", c.ClientIDFile, "File containing the privileged account client-id for the identity-management API")
	fs.StringVar(&c.ClientSecretFile, "idm-client-secret-file", c.ClientSecretFile, "File containing the privileged account client-secret for the identity-management API")
	fs.StringVar(&c.Scope, "idm-scope", c.Scope, "OAuth scope requested when obtaining access tokens")
	fs.BoolVar(&c.Debug, "idm-debug", c.Debug, "Debug flag for the identity-management API client")
	fs.BoolVar(&c.InsecureSkipVerify, "idm-insecure", c.InsecureSkipVerify, "Disable tls verification with the identity-management API")
	fs.DurationVar(&c.Timeout, "idm-timeout", c.Timeout, "Request timeout for the identity-management API client")
	fs.IntVar(&c.Retry.MaxRetries, "idm-max-retries", c.Retry.MaxRetries, "Maximum number of times a failed request is re-issued")
}

func (c *IDMConfig) ReadFiles() error {
	err := shared.ReadFileValueString(c.ClientIDFile, &c.ClientID)
	if err != nil {
		return err
	}
	return shared.ReadFileValueString(c.ClientSecretFile, &c.ClientSecret)
}

// validate is the construction-time options check. It covers only what the
// manager owns: the config must exist and carry a base URL. Headers, token
// provider and retry policy are trusted and passed through to collaborators.
func (c *IDMConfig) validate() *errors.ServiceError {
	if c == nil {
		return errors.Validation("config is required")
	}
	if c.BaseURL == "" {
		return errors.Validation("base URL is required")
	}
	return nil
}

func (c *IDMConfig) hasClientCredentials() bool {
	return c.TokenEndpointURI != "" && c.ClientID != "" && c.ClientSecret != ""
}
