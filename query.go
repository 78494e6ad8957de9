package urlenc

import "strings"

// AppendQuery appends params to the query string of rawurl. If params encode
// to the empty string, rawurl is returned unchanged. Otherwise the encoded
// query is appended after "?", or after "&" when rawurl already carries a
// query string. The URL itself is not parsed or validated.
func AppendQuery(rawurl string, params Params) string {
	query := params.Encode()
	if query == "" {
		return rawurl
	}

	separator := "?"
	if strings.ContainsRune(rawurl, '?') {
		separator = "&"
	}
	return rawurl + separator + query
}
