package urlenc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/urlenc"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"unreserved characters": {
			input: "abcXYZ019-_.~",
			want:  "abcXYZ019-_.~",
		},
		"space becomes plus": {
			input: "a b c",
			want:  "a+b+c",
		},
		"reserved characters": {
			input: "a&b=c?d",
			want:  "a%26b%3Dc%3Fd",
		},
		"literal plus": {
			input: "1+1",
			want:  "1%2B1",
		},
		"percent sign": {
			input: "100%",
			want:  "100%25",
		},
		"non-ascii": {
			input: "太郎",
			want:  "%E5%A4%AA%E9%83%8E",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := urlenc.Encode(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"plus becomes space": {
			input: "a+b",
			want:  "a b",
		},
		"percent escapes": {
			input: "a%26b%3Dc",
			want:  "a&b=c",
		},
		"malformed escape": {
			input:   "%%%",
			wantErr: true,
		},
		"truncated escape": {
			input:   "abc%2",
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := urlenc.Decode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if !tt.wantErr {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"with space",
		"1+1=2",
		"50% off & more",
		"key=value&other=thing",
		"日本語のテキスト",
		"~tilde*star",
	}
	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := urlenc.Decode(urlenc.Encode(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(input, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPercentEncode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"space becomes percent twenty": {
			input: "a b",
			want:  "a%20b",
		},
		"star is escaped": {
			input: "a*b",
			want:  "a%2Ab",
		},
		"tilde stays literal": {
			input: "a~b",
			want:  "a~b",
		},
		"combined": {
			input: "a b*~c",
			want:  "a%20b%2A~c",
		},
		"literal plus": {
			input: "1+1",
			want:  "1%2B1",
		},
		"oauth base string characters": {
			input: "http://example.com/path?a=b&c=d",
			want:  "http%3A%2F%2Fexample.com%2Fpath%3Fa%3Db%26c%3Dd",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := urlenc.PercentEncode(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
