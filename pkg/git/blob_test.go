package git

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gitops-tools/gh-resources/pkg/metrics"
	"github.com/gitops-tools/gh-resources/test"
)

func TestCreateBlobWithTextContent(t *testing.T) {
	m := metrics.NewMock()
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/git/blobs", http.StatusCreated, "testdata/blob_created.json")
	repo := makeClient(t, ts, m).Repository("acme", "widgets")

	blob, err := repo.CreateBlob().TextContent("hello").Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"content": "hello", "encoding": "utf-8"}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
	if blob.SHA != "b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0" {
		t.Fatalf("got sha %s", blob.SHA)
	}
	if m.APICalls != 1 {
		t.Fatalf("metrics count of API calls, got %d, want 1", m.APICalls)
	}
}

func TestCreateBlobWithBinaryContent(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/git/blobs", http.StatusCreated, "testdata/blob_created.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	_, err := repo.CreateBlob().BinaryContent([]byte{0x00, 0xFF}).Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"content": "AP8=", "encoding": "base64"}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
}

func TestCreateBlobLastContentWins(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/git/blobs", http.StatusCreated, "testdata/blob_created.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	_, err := repo.CreateBlob().BinaryContent([]byte("binary")).TextContent("text").Create(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{"content": "text", "encoding": "utf-8"}
	if diff := cmp.Diff(want, test.RequestBody(t, received)); diff != "" {
		t.Fatalf("request body incorrect, diff\n%s", diff)
	}
}

func TestCreateBlobWithErrorResponse(t *testing.T) {
	ts, _ := test.MakeAPIServer(t, http.MethodPost, apiPrefix+"/repos/acme/widgets/git/blobs", http.StatusNotFound, "testdata/not_found.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	blob, err := repo.CreateBlob().TextContent("hello").Create(context.TODO())
	if !IsNotFound(err) {
		t.Fatalf("got %v, want a not found error", err)
	}
	if blob != nil {
		t.Fatalf("got blob %#v on error", blob)
	}
}

func TestGetBlob(t *testing.T) {
	ts, received := test.MakeAPIServer(t, http.MethodGet, apiPrefix+"/repos/acme/widgets/git/blobs/3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15", http.StatusOK, "testdata/blob.json")
	repo := makeClient(t, ts, nil).Repository("acme", "widgets")

	blob, err := repo.GetBlob(context.TODO(), "3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15")
	if err != nil {
		t.Fatal(err)
	}

	b, err := blob.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("testing service\n"), b); diff != "" {
		t.Fatalf("decoded content incorrect, diff\n%s", diff)
	}
	if blob.Size != int64(len(b)) {
		t.Fatalf("got size %d, want %d", blob.Size, len(b))
	}
	u, err := blob.APIURL()
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "api.github.com" {
		t.Fatalf("got host %s", u.Host)
	}
	if len(received.Body) != 0 {
		t.Fatalf("GET request sent a body: %s", received.Body)
	}
}

func TestBlobReadRoundTrip(t *testing.T) {
	contents := [][]byte{
		{},
		{0x00},
		{0x00, 0xFF},
		[]byte("testing service\n"),
		bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 100),
	}

	for _, c := range contents {
		blob := &Blob{Encoding: EncodingBase64, Content: base64.StdEncoding.EncodeToString(c)}

		b, err := blob.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, c) {
			t.Errorf("Read() got %v, want %v", b, c)
		}
	}
}

func TestBlobReadReturnsFreshReaders(t *testing.T) {
	blob := &Blob{Encoding: EncodingBase64, Content: "dGVzdGluZw=="}

	first, err := blob.Read()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadAll(first); err != nil {
		t.Fatal(err)
	}

	second, err := blob.Read()
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "testing" {
		t.Fatalf("got %q, want %q", b, "testing")
	}
}

func TestBlobReadWithUnsupportedEncoding(t *testing.T) {
	for _, enc := range []string{EncodingUTF8, "", "gzip", "BASE64"} {
		blob := &Blob{Encoding: enc, Content: "dGVzdGluZw=="}

		r, err := blob.Read()
		var encErr *UnsupportedEncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("Read() with %q got %v, want an *UnsupportedEncodingError", enc, err)
		}
		if encErr.Encoding != enc {
			t.Errorf("got encoding %q, want %q", encErr.Encoding, enc)
		}
		if r != nil {
			t.Errorf("Read() with %q returned a reader", enc)
		}
		if b, _ := blob.Bytes(); b != nil {
			t.Errorf("Bytes() with %q returned %v", enc, b)
		}
	}
}
