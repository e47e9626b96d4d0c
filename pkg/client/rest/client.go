package rest

import (
	"context"
	"crypto/tls"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/auth"
	svcErrors "github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
)

// ClientOptions carries the transport configuration forwarded to every
// request issued by a resource client.
type ClientOptions struct {
	Headers            map[string]string
	UserAgent          string
	Timeout            time.Duration
	Debug              bool
	InsecureSkipVerify bool
}

// Resource issues HTTP requests against a templated resource URL. Successful
// response bodies are decoded into `out` when one is given; non-2xx responses
// are returned as *errors.APIError with the remote status and body preserved.
//
//go:generate moq -out client_moq.go . Resource
type Resource interface {
	Create(ctx context.Context, body interface{}, out interface{}) error
	GetAll(ctx context.Context, query url.Values, out interface{}) error
	Get(ctx context.Context, params Params, out interface{}) error
	Patch(ctx context.Context, params Params, body interface{}, out interface{}) error
	Delete(ctx context.Context, params Params) error
}

type restClient struct {
	template *urlTemplate
	provider auth.TokenProvider
	client   *resty.Client
}

var _ Resource = &restClient{}

// NewResourceClient returns a Resource bound to the given URL template, for
// example `https://idm.example.com/api/v2/organizations/:id`. The provider
// may be nil, in which case requests carry no Authorization header.
func NewResourceClient(template string, options ClientOptions, provider auth.TokenProvider) (Resource, error) {
	parsedTemplate, svcErr := parseURLTemplate(template)
	if svcErr != nil {
		return nil, svcErr
	}

	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	if options.UserAgent != "" {
		client.SetHeader("User-Agent", options.UserAgent)
	}
	if len(options.Headers) > 0 {
		client.SetHeaders(options.Headers)
	}
	if options.Timeout > 0 {
		client.SetTimeout(options.Timeout)
	}
	client.SetDebug(options.Debug)
	if options.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &restClient{
		template: parsedTemplate,
		provider: provider,
		client:   client,
	}, nil
}

func (c *restClient) Create(ctx context.Context, body interface{}, out interface{}) error {
	request, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	request.SetBody(body)
	return c.execute(request, resty.MethodPost, c.template.collectionURL(), out)
}

func (c *restClient) GetAll(ctx context.Context, query url.Values, out interface{}) error {
	request, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	setQueryParams(request, query)
	return c.execute(request, resty.MethodGet, c.template.collectionURL(), out)
}

func (c *restClient) Get(ctx context.Context, params Params, out interface{}) error {
	request, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	itemURL, svcErr := c.template.itemURL(params)
	if svcErr != nil {
		return svcErr
	}
	return c.execute(request, resty.MethodGet, itemURL, out)
}

func (c *restClient) Patch(ctx context.Context, params Params, body interface{}, out interface{}) error {
	request, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	itemURL, svcErr := c.template.itemURL(params)
	if svcErr != nil {
		return svcErr
	}
	request.SetBody(body)
	return c.execute(request, resty.MethodPatch, itemURL, out)
}

func (c *restClient) Delete(ctx context.Context, params Params) error {
	request, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	itemURL, svcErr := c.template.itemURL(params)
	if svcErr != nil {
		return svcErr
	}
	return c.execute(request, resty.MethodDelete, itemURL, nil)
}

func (c *restClient) newRequest(ctx context.Context) (*resty.Request, error) {
	request := c.client.R().SetContext(ctx)
	if c.provider != nil {
		token, err := c.provider.GetToken()
		if err != nil {
			return nil, svcErrors.NewWithCause(svcErrors.ErrorFailedToGetToken, err, "failed to obtain access token: %s", err.Error())
		}
		request.SetAuthToken(token)
	}
	return request, nil
}

func (c *restClient) execute(request *resty.Request, method string, requestURL string, out interface{}) error {
	if out != nil {
		request.SetResult(out)
	}

	response, err := request.Execute(method, requestURL)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, requestURL)
	}

	if response.IsError() {
		return svcErrors.NewAPIError(response.StatusCode(), response.Body())
	}

	return nil
}

// setQueryParams flattens multi-valued parameters into a single
// comma-separated value so query keys are never repeated on the wire.
func setQueryParams(request *resty.Request, query url.Values) {
	for key, values := range query {
		request.SetQueryParam(key, strings.Join(values, ","))
	}
}
