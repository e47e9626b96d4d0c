package mocks

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/shared"
)

const (
	// APIPrefix is the path the mock mounts the organizations collection
	// under; append it to BaseURL() to build a manager base URL.
	APIPrefix = "/api/v2"

	// TokenPath is the path of the mock token endpoint.
	TokenPath = "/auth/token"

	tokenLifespan = 15 * time.Minute
)

var signingKey = []byte("idm-api-mock-signing-key")

// IdentityAPIMock is a fake identity-management API serving the
// organizations collection plus a client_credentials token endpoint.
type IdentityAPIMock interface {
	Start()
	Stop()
	BaseURL() string
	GenerateNewAuthToken() string
	RegisterClientCredentials(clientID string, clientSecret string)
	TokenRequestCount() int
	FailNextRequestsWith(statusCode int, body string, times int)
	SeedOrganization(organization api.Organization) string
}

type identityAPIMock struct {
	server            *httptest.Server
	authTokens        []string
	clientCredentials map[string]string
	organizations     map[string]api.Organization
	organizationOrder []string
	tokenRequests     int
	failures          []failureResponse
	mu                sync.Mutex
}

type failureResponse struct {
	statusCode int
	body       string
}

type getTokenResponseMock struct {
	AccessToken string `json:"access_token,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

var _ IdentityAPIMock = &identityAPIMock{}

func NewIdentityAPIMock() IdentityAPIMock {
	mockServer := &identityAPIMock{
		clientCredentials: make(map[string]string),
		organizations:     make(map[string]api.Organization),
	}
	mockServer.init()
	return mockServer
}

func (mockServer *identityAPIMock) init() {
	router := mux.NewRouter()
	router.HandleFunc(TokenPath, mockServer.handleToken).Methods(http.MethodPost)

	organizations := router.PathPrefix(APIPrefix + "/organizations").Subrouter()
	organizations.Use(mockServer.failureMiddleware, mockServer.bearerAuthMiddleware)
	organizations.HandleFunc("", mockServer.handleCreate).Methods(http.MethodPost)
	organizations.HandleFunc("", mockServer.handleList).Methods(http.MethodGet)
	organizations.HandleFunc("/{id}", mockServer.handleGet).Methods(http.MethodGet)
	organizations.HandleFunc("/{id}", mockServer.handleUpdate).Methods(http.MethodPatch)
	organizations.HandleFunc("/{id}", mockServer.handleDelete).Methods(http.MethodDelete)

	mockServer.server = httptest.NewUnstartedServer(router)
}

func (mockServer *identityAPIMock) Start() {
	mockServer.server.Start()
}

func (mockServer *identityAPIMock) Stop() {
	mockServer.server.Close()
}

func (mockServer *identityAPIMock) BaseURL() string {
	return mockServer.server.URL
}

// GenerateNewAuthToken mints a signed token accepted by the bearer auth
// middleware.
func (mockServer *identityAPIMock) GenerateNewAuthToken() string {
	token := mockServer.signToken()

	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()
	mockServer.authTokens = append(mockServer.authTokens, token)
	return token
}

func (mockServer *identityAPIMock) RegisterClientCredentials(clientID string, clientSecret string) {
	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()
	mockServer.clientCredentials[clientID] = clientSecret
}

func (mockServer *identityAPIMock) TokenRequestCount() int {
	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()
	return mockServer.tokenRequests
}

// FailNextRequestsWith makes the next `times` organization requests fail
// with the given status and body before any handler runs.
func (mockServer *identityAPIMock) FailNextRequestsWith(statusCode int, body string, times int) {
	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()
	for i := 0; i < times; i++ {
		mockServer.failures = append(mockServer.failures, failureResponse{statusCode: statusCode, body: body})
	}
}

func (mockServer *identityAPIMock) SeedOrganization(organization api.Organization) string {
	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()
	id := organization.ID()
	if id == "" {
		id = newOrganizationID()
		organization["id"] = id
	}
	mockServer.organizations[id] = organization
	mockServer.organizationOrder = append(mockServer.organizationOrder, id)
	return id
}

func (mockServer *identityAPIMock) signToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(tokenLifespan).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.New().String(),
	})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		panic(fmt.Sprintf("failed to sign mock token: %v", err))
	}
	return signed
}

func (mockServer *identityAPIMock) bearerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if strings.HasPrefix(authorizationHeader, "Bearer ") {
			mockServer.mu.Lock()
			tokens := mockServer.authTokens
			mockServer.mu.Unlock()
			if shared.Contains(tokens, strings.TrimPrefix(authorizationHeader, "Bearer ")) {
				next.ServeHTTP(writer, request)
				return
			}
		}

		writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{
			"statusCode": http.StatusUnauthorized,
			"error":      "Unauthorized",
			"message":    "Invalid token",
		})
	})
}

func (mockServer *identityAPIMock) failureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mockServer.mu.Lock()
		var failure *failureResponse
		if len(mockServer.failures) > 0 {
			failure = &mockServer.failures[0]
			mockServer.failures = mockServer.failures[1:]
		}
		mockServer.mu.Unlock()

		if failure != nil {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(failure.statusCode)
			_, _ = writer.Write([]byte(failure.body))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func (mockServer *identityAPIMock) handleToken(writer http.ResponseWriter, request *http.Request) {
	clientID := request.FormValue("client_id")
	clientSecret := request.FormValue("client_secret")

	mockServer.mu.Lock()
	mockServer.tokenRequests++
	registeredSecret, registered := mockServer.clientCredentials[clientID]
	mockServer.mu.Unlock()

	if !registered || registeredSecret != clientSecret {
		writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{
			"error":             "invalid_client",
			"error_description": "Client authentication failed",
		})
		return
	}

	writeJSON(writer, http.StatusOK, getTokenResponseMock{
		AccessToken: mockServer.GenerateNewAuthToken(),
		ExpiresIn:   int(tokenLifespan.Seconds()),
		TokenType:   "Bearer",
	})
}

func (mockServer *identityAPIMock) handleCreate(writer http.ResponseWriter, request *http.Request) {
	defer shared.CloseQuietly(request.Body)
	var organization api.Organization
	if err := json.NewDecoder(request.Body).Decode(&organization); err != nil {
		writeJSON(writer, http.StatusBadRequest, map[string]interface{}{
			"statusCode": http.StatusBadRequest,
			"error":      "Bad Request",
			"message":    "Payload validation error",
		})
		return
	}

	mockServer.mu.Lock()
	id := newOrganizationID()
	organization["id"] = id
	mockServer.organizations[id] = organization
	mockServer.organizationOrder = append(mockServer.organizationOrder, id)
	mockServer.mu.Unlock()

	writeJSON(writer, http.StatusCreated, organization)
}

func (mockServer *identityAPIMock) handleList(writer http.ResponseWriter, request *http.Request) {
	perPage := intQueryParam(request, "per_page", 50)
	page := intQueryParam(request, "page", 0)

	mockServer.mu.Lock()
	defer mockServer.mu.Unlock()

	organizations := []api.Organization{}
	start := page * perPage
	for i := start; i < start+perPage && i < len(mockServer.organizationOrder); i++ {
		organizations = append(organizations, mockServer.organizations[mockServer.organizationOrder[i]])
	}
	writeJSON(writer, http.StatusOK, organizations)
}

func (mockServer *identityAPIMock) handleGet(writer http.ResponseWriter, request *http.Request) {
	mockServer.mu.Lock()
	organization, ok := mockServer.organizations[mux.Vars(request)["id"]]
	mockServer.mu.Unlock()

	if !ok {
		writeOrganizationNotFound(writer)
		return
	}
	writeJSON(writer, http.StatusOK, organization)
}

func (mockServer *identityAPIMock) handleUpdate(writer http.ResponseWriter, request *http.Request) {
	defer shared.CloseQuietly(request.Body)
	var patch api.Organization
	if err := json.NewDecoder(request.Body).Decode(&patch); err != nil {
		writeJSON(writer, http.StatusBadRequest, map[string]interface{}{
			"statusCode": http.StatusBadRequest,
			"error":      "Bad Request",
			"message":    "Payload validation error",
		})
		return
	}

	mockServer.mu.Lock()
	id := mux.Vars(request)["id"]
	organization, ok := mockServer.organizations[id]
	if ok {
		for field, value := range patch {
			organization[field] = value
		}
		organization["id"] = id
		mockServer.organizations[id] = organization
	}
	mockServer.mu.Unlock()

	if !ok {
		writeOrganizationNotFound(writer)
		return
	}
	writeJSON(writer, http.StatusOK, organization)
}

func (mockServer *identityAPIMock) handleDelete(writer http.ResponseWriter, request *http.Request) {
	mockServer.mu.Lock()
	id := mux.Vars(request)["id"]
	_, ok := mockServer.organizations[id]
	if ok {
		delete(mockServer.organizations, id)
		for i, orderedID := range mockServer.organizationOrder {
			if orderedID == id {
				mockServer.organizationOrder = append(mockServer.organizationOrder[:i], mockServer.organizationOrder[i+1:]...)
				break
			}
		}
	}
	mockServer.mu.Unlock()

	if !ok {
		writeOrganizationNotFound(writer)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func writeOrganizationNotFound(writer http.ResponseWriter) {
	writeJSON(writer, http.StatusNotFound, map[string]interface{}{
		"statusCode": http.StatusNotFound,
		"error":      "Not Found",
		"message":    "No organization was found",
		"errorCode":  "inexistent_organization",
	})
}

func writeJSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func intQueryParam(request *http.Request, name string, defaultValue int) int {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

func newOrganizationID() string {
	return "org_" + uuid.New().String()
}
