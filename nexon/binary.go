package nexon

import (
	"bytes"
	"io"
	"net/http"
	"os"
)

// BinaryContent wraps a raw response body for binary targets such as
// rendered character images. The body is never JSON-decoded.
type BinaryContent struct {
	resp *http.Response
	body []byte
}

func newBinaryContent(resp *http.Response, body []byte) *BinaryContent {
	return &BinaryContent{resp: resp, body: body}
}

// Bytes returns the raw response body.
func (b *BinaryContent) Bytes() []byte {
	return b.body
}

// Text returns the body decoded as text.
func (b *BinaryContent) Text() string {
	return string(b.body)
}

// Reader returns a fresh reader over the body.
func (b *BinaryContent) Reader() io.Reader {
	return bytes.NewReader(b.body)
}

// ContentType returns the response Content-Type header.
func (b *BinaryContent) ContentType() string {
	if b.resp == nil {
		return ""
	}
	return b.resp.Header.Get("Content-Type")
}

// WriteTo streams the body to w.
func (b *BinaryContent) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.body)
	return int64(n), err
}

// SaveToFile writes the body to the given path, creating or truncating
// the file.
func (b *BinaryContent) SaveToFile(path string) error {
	return os.WriteFile(path, b.body, 0o644)
}
