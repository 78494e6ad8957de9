package urlenc

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// crlf is the line separator required by multipart/form-data. It delimits
// part headers, content and boundary markers alike, so it must never be
// replaced with a bare "\n".
const crlf = "\r\n"

// fallbackContentType is emitted for file parts whose filename does not map
// to a known MIME type.
const fallbackContentType = "application/octet-stream"

type textField struct {
	name  string
	value string
}

type fileField struct {
	name string
	path string
}

// FormData accumulates text fields and file fields and assembles them into a
// single multipart/form-data body. Fields appear in the body in insertion
// order, with all file parts following all text parts. The zero value is
// ready to use.
//
// FormData buffers the entire payload in memory and reads each file once per
// call to [FormData.Encode]; it holds no open handles between calls. A
// FormData value is not safe for concurrent mutation, but distinct values may
// be used concurrently.
type FormData struct {
	fields []textField
	files  []fileField
}

// AddField appends a plain text field. The value is written verbatim; it is
// the caller's responsibility to choose a boundary that cannot occur within
// it.
func (f *FormData) AddField(name, value string) {
	f.fields = append(f.fields, textField{name: name, value: value})
}

// AddFile appends a file part backed by the file at path. The path string is
// transmitted verbatim as the part's filename; callers wanting only a
// basename must pass one in. The file is not opened until [FormData.Encode]
// is called.
func (f *FormData) AddFile(name, path string) {
	f.files = append(f.files, fileField{name: name, path: path})
}

// Encode assembles the complete multipart/form-data body delimited by
// boundary. On error no partial body is returned.
func (f *FormData) Encode(boundary string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.EncodeTo(&buf, boundary); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the multipart/form-data body to w. Bytes written before an
// I/O failure are not rolled back; callers are expected to retry the whole
// encode against a fresh writer rather than patch a partial body.
func (f *FormData) EncodeTo(w io.Writer, boundary string) error {
	if err := validateBoundary(boundary); err != nil {
		return err
	}

	for _, field := range f.fields {
		if err := writeTextPart(w, boundary, field); err != nil {
			return err
		}
	}
	for _, file := range f.files {
		if err := writeFilePart(w, boundary, file); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "--"+boundary+"--"+crlf)
	return err
}

func writeTextPart(w io.Writer, boundary string, field textField) error {
	var b strings.Builder
	b.WriteString("--" + boundary + crlf)
	b.WriteString(`Content-Disposition: form-data; name="` + field.name + `"` + crlf)
	b.WriteString("Content-Type: text/plain; charset=UTF-8" + crlf)
	b.WriteString(crlf)
	b.WriteString(field.value + crlf)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeFilePart(w io.Writer, boundary string, file fileField) error {
	var b strings.Builder
	b.WriteString("--" + boundary + crlf)
	b.WriteString(`Content-Disposition: form-data; name="` + file.name + `"; filename="` + file.path + `"` + crlf)
	b.WriteString("Content-Type: " + contentTypeFor(file.path) + crlf)
	b.WriteString("Content-Transfer-Encoding: binary" + crlf)
	b.WriteString(crlf)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := copyFileContents(w, file.path); err != nil {
		return err
	}

	// The trailing CRLF terminates the binary content; without it the next
	// boundary marker would not start on its own line.
	_, err := io.WriteString(w, crlf)
	return err
}

// copyFileContents streams the file at path into w in fixed 1024-byte
// chunks. The copy loop is explicit rather than [io.CopyBuffer], which
// silently bypasses the buffer whenever w implements [io.ReaderFrom]. The
// file handle is released on every exit path.
func copyFileContents(w io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "urlenc: cannot open file part %q", path)
	}
	defer src.Close()

	buf := make([]byte, 1024)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return errors.Wrapf(rerr, "urlenc: cannot read file part %q", path)
		}
	}
}

// contentTypeFor guesses a file part's Content-Type from the filename
// extension using the platform MIME table. Unknown extensions fall back to
// application/octet-stream rather than an empty header value.
func contentTypeFor(path string) string {
	if ctype := mime.TypeByExtension(filepath.Ext(path)); ctype != "" {
		return ctype
	}
	return fallbackContentType
}

// RandomBoundary returns a boundary token drawn from crypto/rand, making a
// collision with field or file content vanishingly unlikely.
func RandomBoundary() (string, error) {
	var buf [30]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", errors.Wrap(err, "urlenc: cannot generate boundary")
	}
	return hex.EncodeToString(buf[:]), nil
}

// validateBoundary enforces the boundary grammar of rfc2046#section-5.1.1.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 69 {
		return fmt.Errorf("urlenc: invalid boundary length %d", len(boundary))
	}
	for _, r := range boundary {
		if 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			continue
		}
		switch r {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return fmt.Errorf("urlenc: invalid boundary character %q", r)
	}
	return nil
}
