package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached server resource: a resource name plus its filter or
// id parameters. Keys built from the same inputs are always equal, whatever
// order the parameters were passed in.
type Key string

// NewKey builds a key from a resource name and alternating parameter names
// and values, e.g. NewKey("messages/thread", "conversation", 12, "page", 1).
// A trailing name without a value is ignored.
func NewKey(resource string, params ...any) Key {
	if len(params) < 2 {
		return Key(resource)
	}
	pairs := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		name := fmt.Sprint(params[i])
		value := fmt.Sprint(params[i+1])
		pairs = append(pairs, url.QueryEscape(name)+"="+url.QueryEscape(value))
	}
	sort.Strings(pairs)
	return Key(resource + "?" + strings.Join(pairs, "&"))
}

// Resource returns the resource name without parameters.
func (k Key) Resource() string {
	resource, _, _ := strings.Cut(string(k), "?")
	return resource
}

// Param returns the value of a named parameter, or "" when absent.
func (k Key) Param(name string) string {
	_, query, ok := strings.Cut(string(k), "?")
	if !ok {
		return ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return ""
	}
	return values.Get(name)
}

// HasPrefix reports whether the key starts with prefix.
func (k Key) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(k), prefix)
}
