package git

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Blob encodings understood by the hosting service.
const (
	EncodingBase64 = "base64"
	EncodingUTF8   = "utf-8"
)

// Blob is a content-addressed object as returned by the service, the content
// is kept in its transfer encoding until it is read.
type Blob struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	URL      string `json:"url"`
	SHA      string `json:"sha"`
	Size     int64  `json:"size"`
}

// APIURL parses the API URL of this blob.
func (b *Blob) APIURL() (*url.URL, error) {
	return url.Parse(b.URL)
}

// Read returns a new reader over the decoded content of the blob.
//
// Only base64 content can be decoded, the line breaks the service inserts
// into encoded content are skipped.
func (b *Blob) Read() (io.Reader, error) {
	if b.Encoding == EncodingBase64 {
		return base64.NewDecoder(base64.StdEncoding, strings.NewReader(b.Content)), nil
	}
	return nil, &UnsupportedEncodingError{Encoding: b.Encoding}
}

// Bytes returns the decoded content of the blob.
func (b *Blob) Bytes() ([]byte, error) {
	r, err := b.Read()
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// BlobBuilder configures a new blob.
type BlobBuilder struct {
	repo *Repository
	req  Requester
}

// CreateBlob starts building a blob in the repository.
func (r *Repository) CreateBlob() BlobBuilder {
	return BlobBuilder{repo: r, req: r.root.NewRequester("create_blob")}
}

// TextContent configures the blob with text content, sent verbatim.
func (b BlobBuilder) TextContent(content string) BlobBuilder {
	b.req = b.req.With("content", content).With("encoding", EncodingUTF8)
	return b
}

// BinaryContent configures the blob with binary content, sent base64
// encoded.
func (b BlobBuilder) BinaryContent(content []byte) BlobBuilder {
	b.req = b.req.With("content", base64.StdEncoding.EncodeToString(content)).With("encoding", EncodingBase64)
	return b
}

// Create creates the blob from the configured content.
func (b BlobBuilder) Create(ctx context.Context) (*Blob, error) {
	blob := &Blob{}
	if err := b.req.Method(http.MethodPost).To(ctx, b.repo.APITailURL("git/blobs"), blob); err != nil {
		return nil, err
	}
	return blob, nil
}
