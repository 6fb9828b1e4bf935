package input

import (
	"net/url"

	"github.com/nojima/webreq/method"
)

// Input is what the command line asks for, before file references are
// read and before it becomes a request model.
type Input struct {
	Method     method.Method
	URL        *url.URL
	Parameters []Field // name==value items, appended to the URL query
	Header     Header
	Body       Body
}

type Header struct {
	Fields []Field
}

type BodyType int

const (
	EmptyBody BodyType = iota
	FieldsBody
	RawBody
)

type Body struct {
	BodyType BodyType
	Fields   []Field // used only when BodyType == FieldsBody
	Raw      []byte  // used only when BodyType == RawBody
}

type Field struct {
	Name   string
	Value  string
	IsFile bool
}
