package http

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
)

// newMultipartForm writes a single-file multipart form into buf and returns
// the Content-Type header value to send with it.
func newMultipartForm(t *testing.T, buf *bytes.Buffer, field, fileName, contentType, content string) string {
	t.Helper()

	w := multipart.NewWriter(buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("creating multipart part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing multipart content: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return w.FormDataContentType()
}
