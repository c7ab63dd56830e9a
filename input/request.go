package input

import "net/url"

// Request is the parsed, in-memory representation of one CLI invocation's
// intended HTTP request.
type Request struct {
	Method Method
	URL    *url.URL
	Header Header
	Body   Body
}

type Method string

const (
	MethodGet    = Method("GET")
	MethodPost   = Method("POST")
	MethodPut    = Method("PUT")
	MethodDelete = Method("DELETE")
)

type Header struct {
	Fields []Field
}

// Field is a single header name/value pair. Order and duplicates are
// preserved as they appeared on the command line.
type Field struct {
	Name  string
	Value string
}

type BodyType int

const (
	EmptyBody BodyType = iota
	InlineBody
	FileBody
)

type Body struct {
	BodyType BodyType
	Inline   string // used only when BodyType == InlineBody
	FilePath string // used only when BodyType == FileBody

	// Multipart wraps a file body in a multipart/form-data part named
	// "file" instead of sending the raw bytes.
	Multipart bool
}
