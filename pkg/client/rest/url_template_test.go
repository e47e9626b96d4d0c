package rest

import (
	"testing"

	"github.com/onsi/gomega"
)

func Test_parseURLTemplate(t *testing.T) {
	type args struct {
		raw string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "should parse a template with a named trailing segment",
			args: args{
				raw: "https://idm.example.com/api/v2/organizations/:id",
			},
			wantErr: false,
		},
		{
			name: "should fail for an empty template",
			args: args{
				raw: "",
			},
			wantErr: true,
		},
		{
			name: "should fail for a template without a scheme",
			args: args{
				raw: "idm.example.com/organizations/:id",
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			template, err := parseURLTemplate(tt.args.raw)
			if tt.wantErr {
				g.Expect(err).ToNot(gomega.BeNil())
				g.Expect(err.IsValidation()).To(gomega.Equal(true))
				g.Expect(template).To(gomega.BeNil())
			} else {
				g.Expect(err).To(gomega.BeNil())
				g.Expect(template).ToNot(gomega.BeNil())
			}
		})
	}
}

func Test_urlTemplate_collectionURL(t *testing.T) {
	g := gomega.NewWithT(t)

	template, err := parseURLTemplate("https://idm.example.com/api/v2/organizations/:id")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(template.collectionURL()).To(gomega.Equal("https://idm.example.com/api/v2/organizations"))

	// a trailing slash on the template makes no difference
	template, err = parseURLTemplate("https://idm.example.com/api/v2/organizations/:id/")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(template.collectionURL()).To(gomega.Equal("https://idm.example.com/api/v2/organizations"))
}

func Test_urlTemplate_itemURL(t *testing.T) {
	type args struct {
		template string
		params   Params
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "should substitute the named segment",
			args: args{
				template: "https://idm.example.com/api/v2/organizations/:id",
				params:   Params{"id": "org_123"},
			},
			want: "https://idm.example.com/api/v2/organizations/org_123",
		},
		{
			name: "should escape parameter values",
			args: args{
				template: "https://idm.example.com/api/v2/organizations/:id",
				params:   Params{"id": "org/123"},
			},
			want: "https://idm.example.com/api/v2/organizations/org%2F123",
		},
		{
			name: "should fail when a named segment has no value",
			args: args{
				template: "https://idm.example.com/api/v2/organizations/:id",
				params:   Params{},
			},
			wantErr: true,
		},
		{
			name: "should fail when a named segment is bound to the empty string",
			args: args{
				template: "https://idm.example.com/api/v2/organizations/:id",
				params:   Params{"id": ""},
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			template, err := parseURLTemplate(tt.args.template)
			g.Expect(err).To(gomega.BeNil())

			itemURL, err := template.itemURL(tt.args.params)
			if tt.wantErr {
				g.Expect(err).ToNot(gomega.BeNil())
				g.Expect(err.IsValidation()).To(gomega.Equal(true))
			} else {
				g.Expect(err).To(gomega.BeNil())
				g.Expect(itemURL).To(gomega.Equal(tt.want))
			}
		})
	}
}
