package urlenc_test

import (
	"fmt"

	"github.com/tomasbasham/urlenc"
)

func ExamplePercentEncode() {
	fmt.Println(urlenc.PercentEncode("a b*~c"))
	// Output: a%20b%2A~c
}

func ExampleAppendQuery() {
	var params urlenc.Params
	params.Add("oauth_token", "abc123")
	params.Add("scope", "read write")

	fmt.Println(urlenc.AppendQuery("http://example.com/authorize", params))
	fmt.Println(urlenc.AppendQuery("http://example.com/authorize?v=2", params))
	// Output:
	// http://example.com/authorize?oauth_token=abc123&scope=read+write
	// http://example.com/authorize?v=2&oauth_token=abc123&scope=read+write
}

func ExampleFormData_Encode() {
	var form urlenc.FormData
	form.AddField("title", "Holiday photo")

	body, err := form.Encode("boundary42")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%q\n", body)
	// Output: "--boundary42\r\nContent-Disposition: form-data; name=\"title\"\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\nHoliday photo\r\n--boundary42--\r\n"
}

func ExampleMarshal() {
	type TokenRequest struct {
		GrantType string `form:"grant_type"`
		Code      string `form:"code"`
	}

	params, err := urlenc.Marshal(TokenRequest{
		GrantType: "authorization_code",
		Code:      "abc123",
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(params.Encode())
	// Output: code=abc123&grant_type=authorization_code
}
