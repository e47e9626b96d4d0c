package auth

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	svcErrors "github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/shared"
)

const (
	// access token duration before expiration
	tokenLifeDuration    = 5 * time.Minute
	cacheCleanupInterval = 299 * time.Second
)

// TokenProvider supplies the bearer token attached to outgoing API requests.
//
//go:generate moq -out token_provider_moq.go . TokenProvider
type TokenProvider interface {
	GetToken() (string, error)
}

type staticTokenProvider struct {
	token string
}

var _ TokenProvider = &staticTokenProvider{}

// NewStaticTokenProvider returns a provider that always supplies the given
// token. Useful for tests and for callers that manage tokens themselves.
func NewStaticTokenProvider(token string) TokenProvider {
	return &staticTokenProvider{token: token}
}

func (p *staticTokenProvider) GetToken() (string, error) {
	return p.token, nil
}

// ClientCredentialsConfig configures the client_credentials grant used to
// obtain access tokens from the identity-management token endpoint.
type ClientCredentialsConfig struct {
	TokenEndpointURI string `json:"token_endpoint_uri"`
	ClientID         string `json:"client-id"`
	ClientSecret     string `json:"client-secret"`
	Scope            string `json:"scope"`
}

type clientCredentialsProvider struct {
	config *ClientCredentialsConfig
	client *resty.Client
	cache  *cache.Cache
}

var _ TokenProvider = &clientCredentialsProvider{}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// NewClientCredentialsProvider returns a provider that requests tokens with
// the client_credentials grant, caching them until they expire.
func NewClientCredentialsProvider(config *ClientCredentialsConfig) TokenProvider {
	return &clientCredentialsProvider{
		config: config,
		client: resty.New(),
		cache:  cache.New(tokenLifeDuration, cacheCleanupInterval),
	}
}

func (p *clientCredentialsProvider) GetToken() (string, error) {
	cachedTokenKey := fmt.Sprintf("%s%s", p.config.TokenEndpointURI, p.config.ClientID)
	cachedToken := p.getCachedToken(cachedTokenKey)

	if cachedToken != "" && !shared.IsJWTTokenExpired(cachedToken) {
		return cachedToken, nil
	}

	var tokenData tokenResponse
	resp, err := p.client.R().
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     p.config.ClientID,
			"client_secret": p.config.ClientSecret,
			"scope":         p.config.Scope,
		}).
		SetResult(&tokenData).
		Post(p.config.TokenEndpointURI)
	if err != nil {
		return "", errors.Wrap(err, "failed to request access token")
	}

	if resp.IsError() {
		return "", svcErrors.FailedToGetToken("token endpoint returned status %d", resp.StatusCode())
	}

	if tokenData.AccessToken == "" {
		return "", svcErrors.FailedToGetToken("token endpoint returned no access token")
	}

	p.cache.Set(cachedTokenKey, tokenData.AccessToken, cacheCleanupInterval)
	return tokenData.AccessToken, nil
}

func (p *clientCredentialsProvider) getCachedToken(tokenKey string) string {
	cachedToken, isCached := p.cache.Get(tokenKey)
	if !isCached {
		return ""
	}
	token, _ := cachedToken.(string)
	return token
}
