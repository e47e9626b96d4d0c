package errors

import (
	"net/http"
	"testing"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var (
	genericErrorMessage = "something went wrong"
)

func TestErrorFormatting(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(ErrorGeneral, "test %s, %d", "errors", 1)
	g.Expect(err.Reason).To(gomega.Equal("test errors, 1"))
}

func TestErrorFind(t *testing.T) {
	g := gomega.NewWithT(t)
	exists, err := Find(ErrorNotFound)
	g.Expect(exists).To(gomega.Equal(true))
	g.Expect(err.Code).To(gomega.Equal(ErrorNotFound))

	// Hopefully we never reach 91,823,719 error codes or this test will fail
	exists, err = Find(ServiceErrorCode(91823719))
	g.Expect(exists).To(gomega.Equal(false))
	g.Expect(err).To(gomega.BeNil())
}

func Test_NewErrorFromHTTPStatusCode(t *testing.T) {
	type args struct {
		httpCode int
		reason   string
	}

	tests := []struct {
		name string
		args args
		want *ServiceError
	}{
		{
			name: "should return bad request error",
			args: args{
				httpCode: http.StatusBadRequest,
				reason:   genericErrorMessage,
			},
			want: BadRequest(genericErrorMessage),
		},
		{
			name: "should return unauthenticated error",
			args: args{
				httpCode: http.StatusUnauthorized,
				reason:   genericErrorMessage,
			},
			want: Unauthenticated(genericErrorMessage),
		},
		{
			name: "should return forbidden error",
			args: args{
				httpCode: http.StatusForbidden,
				reason:   genericErrorMessage,
			},
			want: Forbidden(genericErrorMessage),
		},
		{
			name: "should return not found error",
			args: args{
				httpCode: http.StatusNotFound,
				reason:   genericErrorMessage,
			},
			want: NotFound(genericErrorMessage),
		},
		{
			name: "should return conflict error",
			args: args{
				httpCode: http.StatusConflict,
				reason:   genericErrorMessage,
			},
			want: Conflict(genericErrorMessage),
		},
		{
			name: "should return too many requests error",
			args: args{
				httpCode: http.StatusTooManyRequests,
				reason:   genericErrorMessage,
			},
			want: TooManyRequests(genericErrorMessage),
		},
		{
			name: "should return general error for a server error status",
			args: args{
				httpCode: http.StatusBadGateway,
				reason:   genericErrorMessage,
			},
			want: GeneralError(genericErrorMessage),
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(NewErrorFromHTTPStatusCode(tt.args.httpCode, tt.args.reason)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_NewWithCause(t *testing.T) {
	g := gomega.NewWithT(t)
	cause := errors.New("connection refused")
	err := NewWithCause(ErrorGeneral, cause, "unable to list organizations")
	g.Expect(err.Reason).To(gomega.Equal("unable to list organizations"))
	g.Expect(errors.Is(err, cause)).To(gomega.Equal(true))
	g.Expect(err.Unwrap()).ToNot(gomega.BeNil())
	g.Expect(err.StackTrace()).ToNot(gomega.BeNil())
}

func Test_ServiceErrorPredicates(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(NotFound("").Is404()).To(gomega.Equal(true))
	g.Expect(Conflict("").IsConflict()).To(gomega.Equal(true))
	g.Expect(Forbidden("").IsForbidden()).To(gomega.Equal(true))
	g.Expect(TooManyRequests("").IsTooManyRequests()).To(gomega.Equal(true))
	g.Expect(Validation("").IsValidation()).To(gomega.Equal(true))
	g.Expect(BadRequest("").IsClientErrorClass()).To(gomega.Equal(true))
	g.Expect(GeneralError("").IsServerErrorClass()).To(gomega.Equal(true))
}

func Test_NewAPIError(t *testing.T) {
	type args struct {
		statusCode int
		body       []byte
	}
	tests := []struct {
		name        string
		args        args
		wantCode    string
		wantMessage string
	}{
		{
			name: "should decode remote error fields from a JSON body",
			args: args{
				statusCode: http.StatusNotFound,
				body:       []byte(`{"statusCode":404,"error":"Not Found","message":"No organization was found","errorCode":"inexistent_organization"}`),
			},
			wantCode:    "inexistent_organization",
			wantMessage: "No organization was found",
		},
		{
			name: "should fall back to the status text for a non-JSON body",
			args: args{
				statusCode: http.StatusBadGateway,
				body:       []byte("upstream exploded"),
			},
			wantCode:    "",
			wantMessage: "Bad Gateway",
		},
		{
			name: "should use the error_description field when present",
			args: args{
				statusCode: http.StatusUnauthorized,
				body:       []byte(`{"error":"invalid_client","error_description":"Client authentication failed"}`),
			},
			wantCode:    "invalid_client",
			wantMessage: "Client authentication failed",
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			apiError := NewAPIError(tt.args.statusCode, tt.args.body)
			g.Expect(apiError.StatusCode).To(gomega.Equal(tt.args.statusCode))
			g.Expect(apiError.Code).To(gomega.Equal(tt.wantCode))
			g.Expect(apiError.Message).To(gomega.Equal(tt.wantMessage))
			g.Expect(apiError.RawBody).To(gomega.Equal(tt.args.body))
			g.Expect(apiError.Error()).To(gomega.ContainSubstring(tt.wantMessage))
		})
	}
}
