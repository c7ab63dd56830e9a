package exchange

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/antonsterkhov/HttpClientCLI/input"
	"github.com/antonsterkhov/HttpClientCLI/version"
	"github.com/pkg/errors"
)

// FileReadError reports a --file path that could not be read. No request
// is sent when it occurs.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading request body from '%s': %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

func BuildHTTPRequest(req *input.Request, options *Options) (*http.Request, error) {
	header := buildHTTPHeader(req)

	bodyTuple, err := buildHTTPBody(req)
	if err != nil {
		return nil, err
	}

	if header.Get("Content-Type") == "" && bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", fmt.Sprintf("http-client/%s", version.Current()))
	}
	if options.Auth.Enabled {
		credentials := options.Auth.UserName + ":" + options.Auth.Password
		header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	}

	r := http.Request{
		Method:        string(req.Method),
		URL:           req.URL,
		Header:        header,
		Host:          header.Get("Host"),
		Body:          bodyTuple.body,
		ContentLength: bodyTuple.contentLength,
	}
	return &r, nil
}

// buildHTTPHeader attaches fields in parse order. Duplicate names are not
// merged; each occurrence becomes its own header line.
func buildHTTPHeader(req *input.Request) http.Header {
	header := make(http.Header)
	for _, field := range req.Header.Fields {
		header.Add(field.Name, field.Value)
	}
	return header
}

type bodyTuple struct {
	body          io.ReadCloser
	contentLength int64
	contentType   string
}

func buildHTTPBody(req *input.Request) (bodyTuple, error) {
	switch req.Body.BodyType {
	case input.EmptyBody:
		return bodyTuple{}, nil
	case input.InlineBody:
		return buildInlineBody(req)
	case input.FileBody:
		return buildFileBody(req)
	default:
		return bodyTuple{}, errors.Errorf("unknown body type: %v", req.Body.BodyType)
	}
}

func buildInlineBody(req *input.Request) (bodyTuple, error) {
	body := []byte(req.Body.Inline)
	return bodyTuple{
		body:          io.NopCloser(bytes.NewReader(body)),
		contentLength: int64(len(body)),
		contentType:   "application/json",
	}, nil
}

func buildFileBody(req *input.Request) (bodyTuple, error) {
	data, err := os.ReadFile(req.Body.FilePath)
	if err != nil {
		return bodyTuple{}, errors.WithStack(&FileReadError{Path: req.Body.FilePath, Err: err})
	}

	if req.Body.Multipart {
		return buildMultipartBody(req.Body.FilePath, data)
	}

	return bodyTuple{
		body:          io.NopCloser(bytes.NewReader(data)),
		contentLength: int64(len(data)),
		contentType:   "application/octet-stream",
	}, nil
}

func buildMultipartBody(path string, data []byte) (bodyTuple, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return bodyTuple{}, errors.Wrap(err, "creating multipart field")
	}
	if _, err := part.Write(data); err != nil {
		return bodyTuple{}, errors.Wrap(err, "writing multipart field")
	}
	if err := writer.Close(); err != nil {
		return bodyTuple{}, errors.Wrap(err, "finalizing multipart body")
	}

	return bodyTuple{
		body:          io.NopCloser(bytes.NewReader(buffer.Bytes())),
		contentLength: int64(buffer.Len()),
		contentType:   writer.FormDataContentType(),
	}, nil
}
