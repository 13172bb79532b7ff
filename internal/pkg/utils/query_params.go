package utils

import "net/url"

// QueryParam is one forwarded query-string pair.
type QueryParam struct {
	Key   string
	Value string
}

// ForwardQuery encodes the non-empty params for a button target.
func ForwardQuery(params ...QueryParam) string {
	values := url.Values{}
	for _, p := range params {
		if p.Value != "" {
			values.Set(p.Key, p.Value)
		}
	}
	return values.Encode()
}

// Target joins a route path and an encoded query.
func Target(path string, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}
