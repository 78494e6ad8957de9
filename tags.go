package urlenc

import (
	"reflect"
	"strings"
	"sync"
)

// structTagCache avoids re-parsing the `form` tags of a struct type on every
// call to Marshal. Keyed by [reflect.Type]; safe for concurrent use.
var structTagCache sync.Map

type tag struct {
	Name   string
	Omit   bool
	Ignore bool
}

func tags(fv reflect.Value) []*tag {
	tt := reflect.Indirect(fv).Type()
	if tt.Kind() != reflect.Struct {
		return []*tag{}
	}

	if cached, ok := structTagCache.Load(tt); ok {
		return cached.([]*tag)
	}

	tags := make([]*tag, tt.NumField())
	for i := 0; i < tt.NumField(); i++ {
		f := tt.Field(i)
		tag := parseTag(f.Tag.Get("form"))
		if !tag.Ignore && tag.Name == "" {
			// Untagged fields keep their Go name.
			tag.Name = f.Name
		}
		tags[i] = tag
	}

	structTagCache.Store(tt, tags)
	return tags
}

func parseTag(str string) *tag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return &tag{Ignore: true}
	}

	parts := strings.Split(str, ",")
	t := &tag{Name: strings.TrimSpace(parts[0])}

	// The remaining parts are flags modifying the field's behaviour.
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "omitempty":
			t.Omit = true
		case "ignore":
			t.Ignore = true
		}
	}
	return t
}
