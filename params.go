package urlenc

import (
	"strings"
)

// Param is a single query or form parameter. A Param without a value encodes
// as a bare key with no "=".
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// Params is an ordered list of parameters. The zero value is ready to use.
// Unlike [net/url.Values], encoding preserves insertion order rather than
// sorting by key.
type Params []Param

// Add appends a key-value pair, keeping any existing parameters with the same
// key.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value, HasValue: true})
}

// AddKey appends a value-less parameter, which encodes as the bare key.
func (p *Params) AddKey(key string) {
	*p = append(*p, Param{Key: key})
}

// Set replaces the value of the first parameter with the given key, or
// appends a new parameter if the key is absent.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			(*p)[i].HasValue = true
			return
		}
	}
	p.Add(key, value)
}

// Get returns the value of the first parameter with the given key. The second
// return value reports whether the key was present with a value.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, param.HasValue
		}
	}
	return "", false
}

// Encode serializes p into application/x-www-form-urlencoded format. Keys and
// values are encoded independently with [Encode] and joined with "&" in
// insertion order. An empty or nil list encodes to the empty string.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(p) * 20)
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Encode(param.Key))
		if param.HasValue {
			b.WriteByte('=')
			b.WriteString(Encode(param.Value))
		}
	}
	return b.String()
}

// ParseParams decodes a form-urlencoded query string into an ordered [Params]
// list. A pair without "=" becomes a value-less parameter. ParseParams is the
// inverse of [Params.Encode].
func ParseParams(query string) (Params, error) {
	if query == "" {
		return nil, nil
	}

	var params Params
	for _, pair := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(pair, "=")

		decodedKey, err := Decode(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			params = append(params, Param{Key: decodedKey})
			continue
		}

		decodedValue, err := Decode(value)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{Key: decodedKey, Value: decodedValue, HasValue: true})
	}
	return params, nil
}
