package rest

import (
	"net/url"
	"strings"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
)

// Params binds values to the named `:parameter` segments of a URL template.
type Params map[string]string

// urlTemplate is a resource URL of the form
// `https://host/path/to/collection/:id`. Named segments are substituted per
// request; the trailing named segment is dropped for collection URLs.
type urlTemplate struct {
	base     string
	segments []string
}

func parseURLTemplate(raw string) (*urlTemplate, *errors.ServiceError) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return nil, errors.Validation("url template is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Validation("invalid url template '%s'", raw)
	}

	template := &urlTemplate{
		base: parsed.Scheme + "://" + parsed.Host,
	}
	if path := strings.Trim(parsed.Path, "/"); path != "" {
		template.segments = strings.Split(path, "/")
	}
	return template, nil
}

// collectionURL returns the template URL without its trailing named
// segments, addressing the resource collection.
func (t *urlTemplate) collectionURL() string {
	segments := t.segments
	for len(segments) > 0 && isNamedSegment(segments[len(segments)-1]) {
		segments = segments[:len(segments)-1]
	}
	return t.join(segments)
}

// itemURL substitutes every named segment from params, addressing a single
// resource. Every named segment must be bound to a non-empty value.
func (t *urlTemplate) itemURL(params Params) (string, *errors.ServiceError) {
	segments := make([]string, 0, len(t.segments))
	for _, segment := range t.segments {
		if !isNamedSegment(segment) {
			segments = append(segments, segment)
			continue
		}
		name := strings.TrimPrefix(segment, ":")
		value := params[name]
		if value == "" {
			return "", errors.Validation("missing value for url parameter '%s'", name)
		}
		segments = append(segments, url.PathEscape(value))
	}
	return t.join(segments), nil
}

func (t *urlTemplate) join(segments []string) string {
	if len(segments) == 0 {
		return t.base
	}
	return t.base + "/" + strings.Join(segments, "/")
}

func isNamedSegment(segment string) bool {
	return strings.HasPrefix(segment, ":")
}
