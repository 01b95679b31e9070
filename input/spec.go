package input

import (
	"encoding/json"
	"io/ioutil"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/todoapp/network-go/request"
)

func buildSpec(in *items, options *Options, spec *request.Spec) error {
	header, err := buildHeader(in, options)
	if err != nil {
		return err
	}

	for _, field := range in.Parameters {
		value, err := resolveFieldValue(field)
		if err != nil {
			return err
		}
		spec.QueryItems = append(spec.QueryItems, request.QueryItem{Name: field.Name, Value: value})
	}

	body, contentType, err := buildBody(in)
	if err != nil {
		return err
	}
	if contentType != "" && !hasHeader(header, "Content-Type") {
		if header == nil {
			header = map[string]string{}
		}
		header["Content-Type"] = contentType
	}

	spec.Header = header
	spec.Body = body
	return nil
}

// buildHeader layers command-line headers over the profile defaults.
// Names that differ only in case replace each other.
func buildHeader(in *items, options *Options) (map[string]string, error) {
	if len(options.Header) == 0 && len(in.Header) == 0 {
		return nil, nil
	}
	header := make(map[string]string, len(options.Header)+len(in.Header))
	for name, value := range options.Header {
		header[name] = value
	}
	for _, field := range in.Header {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, err
		}
		for existing := range header {
			if strings.EqualFold(existing, field.Name) {
				delete(header, existing)
			}
		}
		header[field.Name] = value
	}
	return header, nil
}

func hasHeader(header map[string]string, name string) bool {
	for existing := range header {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

func buildBody(in *items) ([]byte, string, error) {
	switch in.Body.BodyType {
	case EmptyBody:
		return nil, "", nil
	case JSONBody:
		return buildJSONBody(in)
	case FormBody:
		return buildFormBody(in)
	case RawBody:
		return in.Body.Raw, "application/json", nil
	default:
		return nil, "", errors.Errorf("unknown body type: %v", in.Body.BodyType)
	}
}

func buildJSONBody(in *items) ([]byte, string, error) {
	obj := map[string]interface{}{}
	for _, field := range in.Body.Fields {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, "", err
		}
		obj[field.Name] = value
	}
	for _, field := range in.Body.RawJSONFields {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, "", err
		}
		var v interface{}
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			return nil, "", errors.Wrapf(err, "parsing JSON value of '%s'", field.Name)
		}
		obj[field.Name] = v
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return body, "application/json", nil
}

func buildFormBody(in *items) ([]byte, string, error) {
	form := url.Values{}
	for _, field := range in.Body.Fields {
		value, err := resolveFieldValue(field)
		if err != nil {
			return nil, "", err
		}
		form.Add(field.Name, value)
	}
	return []byte(form.Encode()), "application/x-www-form-urlencoded; charset=utf-8", nil
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
