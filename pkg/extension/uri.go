package extension

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// QueryParam is a single query string item. Order is preserved.
type QueryParam struct {
	Key   string
	Value string
}

// BuildResourceQuery appends the url-encoded query to uri, adding the
// leading '?' unless uri already ends with one
func BuildResourceQuery(uri string, query []QueryParam) string {
	if !strings.HasSuffix(uri, "?") {
		uri += "?"
	}

	var sb strings.Builder
	sb.WriteString(uri)
	for i, p := range query {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

// BuildURI replaces every {{name}} placeholder of template with the escaped
// value of params[name]. Placeholders without a param are kept.
func BuildURI(template string, params map[string]any) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		placeholder := "{{" + name + "}}"
		template = strings.ReplaceAll(template, placeholder, Escape(fmt.Sprint(params[name])))
	}

	return template
}

// Escape percent-encodes s for a uri. Letters, digits, '_', '.', '-', '~'
// and '/' are kept, everything else is escaped and space becomes %20.
func Escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"), "%2F", "/")
}

// BuildResourceQuery calls BuildResourceQuery
func (b *Base) BuildResourceQuery(uri string, query []QueryParam) string {
	return BuildResourceQuery(uri, query)
}

// BuildURI calls BuildURI
func (b *Base) BuildURI(template string, params map[string]any) string {
	return BuildURI(template, params)
}
