package urlenc_test

import (
	"time"
)

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns,omitempty"`
}

type Credentials struct {
	Key      string  `form:"oauth_consumer_key"`
	Token    string  `form:"oauth_token,omitempty"`
	Secret   string  `form:"-"`
	Verifier *string `form:"oauth_verifier,omitempty"`
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

// Stamp implements Marshaler but is also a plain struct, so it exercises both
// the nested single-value rendering and the top-level field traversal.
type Stamp struct {
	Value string `form:"value"`
}

func (s Stamp) MarshalForm() (string, error) {
	return s.Value, nil
}
