package api

import (
	"net/url"
	"strconv"
)

// Organization is an opaque representation of an organization as returned by
// the identity-management API. The field set is owned by the remote service,
// so records are kept as raw maps instead of a fixed struct.
type Organization map[string]interface{}

// ID returns the organization id, or the empty string when the record does
// not carry one.
func (o Organization) ID() string {
	return o.stringField("id")
}

// Name returns the organization name, or the empty string when the record
// does not carry one.
func (o Organization) Name() string {
	return o.stringField("name")
}

func (o Organization) stringField(field string) string {
	value, ok := o[field].(string)
	if !ok {
		return ""
	}
	return value
}

// OrganizationParams identifies a single organization for get, update and
// delete operations.
type OrganizationParams struct {
	ID string
}

// PageParams selects one page of a collection listing. Page is zero-indexed.
type PageParams struct {
	PerPage int
	Page    int
}

// Query returns the pagination query parameters understood by the
// identity-management API. A nil receiver yields no parameters.
func (p *PageParams) Query() url.Values {
	if p == nil {
		return nil
	}
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(p.PerPage))
	query.Set("page", strconv.Itoa(p.Page))
	return query
}
