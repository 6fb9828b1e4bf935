package input

import (
	"io/ioutil"

	"github.com/nojima/webreq/logger"
	"github.com/nojima/webreq/param"
	"github.com/nojima/webreq/request"
	"github.com/pkg/errors"
)

// BuildRequest turns parsed command line input into a request model.
//
// name==value items are appended to the URL query as written. name=value
// items become the explicit parameter list, so with a bodiless method such
// as GET they replace the URL query. A body read from stdin becomes the raw
// body.
func BuildRequest(in *Input, options *Options, log logger.Logger) (*request.Request, error) {
	u := *in.URL
	if len(in.Parameters) > 0 {
		extra, err := resolveFields(in.Parameters)
		if err != nil {
			return nil, err
		}
		if u.RawQuery == "" {
			u.RawQuery = param.EncodeQuery(extra)
		} else {
			u.RawQuery += "&" + param.EncodeQuery(extra)
		}
	}

	r := request.New(&u)
	r.SetLogger(log)
	r.SetMethod(in.Method)
	r.SetEncodingType(options.Encoding)

	for _, field := range in.Header.Fields {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, err
		}
		r.AddHeader(field.Name, value)
	}

	switch in.Body.BodyType {
	case EmptyBody:
	case FieldsBody:
		params, err := resolveFields(in.Body.Fields)
		if err != nil {
			return nil, err
		}
		r.SetParameters(params)
	case RawBody:
		r.SetBody(string(in.Body.Raw))
	default:
		return nil, errors.Errorf("unknown body type: %v", in.Body.BodyType)
	}
	return r, nil
}

func resolveFields(fields []Field) (param.List, error) {
	params := make(param.List, 0, len(fields))
	for _, field := range fields {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, err
		}
		params.Add(field.Name, value)
	}
	return params, nil
}

func resolveFieldValue(field Field) (string, error) {
	if !field.IsFile {
		return field.Value, nil
	}
	data, err := ioutil.ReadFile(field.Value)
	if err != nil {
		return "", errors.Wrapf(err, "reading field value of '%s'", field.Name)
	}
	return string(data), nil
}
