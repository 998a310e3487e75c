package git

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jenkins-x/go-scm/scm"
)

const mediaType = "application/vnd.github.v3+json"

// Requester accumulates the parameters and method for a single call to the
// hosting service.
//
// Requesters are values, With and Method return a modified copy and never
// change the receiver, so a partially configured Requester can be shared and
// extended safely.
type Requester struct {
	root   *Client
	name   string
	method string
	params map[string]interface{}
}

// With records a named parameter, replacing any previous value with the same
// name.
//
// Values are strings, bools or string slices, a nil value (including a nil
// slice) removes the parameter from the request.
func (r Requester) With(name string, value interface{}) Requester {
	params := make(map[string]interface{}, len(r.params)+1)
	for k, v := range r.params {
		params[k] = v
	}
	if isAbsent(value) {
		delete(params, name)
	} else {
		params[name] = value
	}
	r.params = params
	return r
}

// Method sets the HTTP method, requests default to GET.
func (r Requester) Method(m string) Requester {
	r.method = m
	return r
}

// To sends the request to path and decodes the response body into v.
func (r Requester) To(ctx context.Context, path string, v interface{}) error {
	res, err := r.do(ctx, path)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		r.root.metrics.CountFailedAPICall(r.name)
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		r.root.metrics.CountFailedAPICall(r.name)
		r.root.log.Errorw("failed to decode response", "name", r.name, "path", path, "error", err)
		return &DecodeError{Method: r.verb(), Path: path, Err: err}
	}
	return nil
}

// Send sends the request to path, discarding any response body.
//
// It's used where the status alone signals success.
func (r Requester) Send(ctx context.Context, path string) error {
	res, err := r.do(ctx, path)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if _, err := io.Copy(io.Discard, res.Body); err != nil {
		r.root.metrics.CountFailedAPICall(r.name)
		return err
	}
	return nil
}

func (r Requester) do(ctx context.Context, path string) (*scm.Response, error) {
	req, err := r.request(path)
	if err != nil {
		return nil, err
	}
	r.root.metrics.CountAPICall(r.name)
	res, err := r.root.client.Do(ctx, req)
	if err != nil {
		r.root.metrics.CountFailedAPICall(r.name)
		r.root.log.Errorw("api request failed", "name", r.name, "method", req.Method, "path", path, "error", err)
		return nil, err
	}
	r.root.log.Debugw("api request", "name", r.name, "method", req.Method, "path", path, "status", res.Status)
	if res.Body == nil {
		res.Body = io.NopCloser(bytes.NewReader(nil))
	}
	if isErrorStatus(res.Status) {
		defer res.Body.Close()
		r.root.metrics.CountFailedAPICall(r.name)
		return nil, newAPIError(req.Method, path, res)
	}
	return res, nil
}

// request builds the outgoing request, the path is made relative so that it
// resolves against the base URL of the transport.
func (r Requester) request(path string) (*scm.Request, error) {
	req := &scm.Request{
		Method: r.verb(),
		Path:   strings.TrimPrefix(path, "/"),
		Header: http.Header{"Accept": []string{mediaType}},
	}
	if len(r.params) == 0 {
		return req, nil
	}
	if !hasBody(req.Method) {
		req.Path = withQuery(req.Path, r.params)
		return req, nil
	}
	b, err := json.Marshal(r.params)
	if err != nil {
		return nil, fmt.Errorf("encoding parameters for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Body = bytes.NewReader(b)
	return req, nil
}

func (r Requester) verb() string {
	if r.method == "" {
		return http.MethodGet
	}
	return r.method
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func withQuery(path string, params map[string]interface{}) string {
	q := url.Values{}
	for k, v := range params {
		switch v := v.(type) {
		case string:
			q.Set(k, v)
		case bool:
			q.Set(k, strconv.FormatBool(v))
		case []string:
			q[k] = append([]string(nil), v...)
		default:
			q.Set(k, fmt.Sprint(v))
		}
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q.Encode()
}

func isAbsent(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case []string:
		return v == nil
	}
	return false
}
