package input

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"

	"github.com/todoapp/network-go/request"
)

var (
	reMethod    = regexp.MustCompile(`^[a-zA-Z]+$`)
	reScheme    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)
	emptyMethod = request.Method("")
)

type itemType int

const (
	unknownItem itemType = iota
	httpHeaderItem
	urlParameterItem
	dataFieldItem
	rawJSONFieldItem
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

type state struct {
	preferredBodyType BodyType
	stdinConsumed     bool
}

// ParseArgs turns `[METHOD] BASE_URL [/PATH] [ITEM ...]` into a request spec.
func ParseArgs(args []string, stdin io.Reader, options *Options) (*request.Spec, error) {
	var argMethod string
	var argURL string
	var argItems []string
	switch len(args) {
	case 0:
		return nil, newUsageError("URL is required")
	case 1:
		argURL = args[0]
	default:
		if reMethod.MatchString(args[0]) {
			argMethod = args[0]
			argURL = args[1]
			argItems = args[2:]
		} else {
			argURL = args[0]
			argItems = args[1:]
		}
	}

	spec := request.Spec{}
	if options.BaseURL != "" && strings.HasPrefix(argURL, "/") {
		spec.BaseURL = options.BaseURL
		spec.Path = argURL
	} else {
		spec.BaseURL = expandBaseURL(argURL)
		if len(argItems) > 0 && strings.HasPrefix(argItems[0], "/") {
			spec.Path = argItems[0]
			argItems = argItems[1:]
		}
	}

	in := items{}
	state := state{}
	var err error
	state.preferredBodyType, err = determinePreferredBodyType(options)
	if err != nil {
		return nil, err
	}

	for _, arg := range argItems {
		if err := parseItem(arg, stdin, &state, &in); err != nil {
			return nil, err
		}
	}
	if options.ReadStdin && !state.stdinConsumed {
		if in.Body.BodyType != EmptyBody {
			return nil, errors.New("request body (from stdin) and request item (key=value) cannot be mixed")
		}
		in.Body.BodyType = RawBody
		in.Body.Raw, err = ioutil.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		state.stdinConsumed = true
	}

	if argMethod != "" {
		method, err := parseMethod(argMethod)
		if err != nil {
			return nil, err
		}
		spec.Method = method
	} else {
		spec.Method = guessMethod(&in)
	}

	if err := buildSpec(&in, options, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func determinePreferredBodyType(options *Options) (BodyType, error) {
	if options.JSON && options.Form {
		return EmptyBody, errors.New("You cannot specify both of --json and --form")
	}
	if options.Form {
		return FormBody, nil
	} else {
		return JSONBody, nil
	}
}

func parseMethod(s string) (request.Method, error) {
	if !reMethod.MatchString(s) {
		return emptyMethod, errors.Errorf("METHOD must consist of alphabets: %s", s)
	}

	method := request.Method(strings.ToUpper(s))
	return method, nil
}

func guessMethod(in *items) request.Method {
	if in.Body.BodyType == EmptyBody {
		return request.MethodGet
	} else {
		return request.MethodPost
	}
}

// expandBaseURL fills in the parts users may omit. It does not
// validate; request.Build does.
func expandBaseURL(s string) string {
	defaultScheme := "http"
	defaultHost := "localhost"

	// ex) :/hello or :
	if strings.HasPrefix(s, ":") && (len(s) == 1 || s[1] < '0' || s[1] > '9') {
		s = s[1:]
	}

	// ex) :8080/hello or /hello
	if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}
	return s
}

func parseItem(s string, stdin io.Reader, state *state, in *items) error {
	itemType, name, value := splitItem(s)
	switch itemType {
	case dataFieldItem:
		in.Body.BodyType = state.preferredBodyType
		field, err := parseField(name, value, stdin, state)
		if err != nil {
			return err
		}
		in.Body.Fields = append(in.Body.Fields, field)
	case rawJSONFieldItem:
		if state.preferredBodyType != JSONBody {
			return errors.New("raw JSON field item cannot be used in non-JSON body")
		}
		in.Body.BodyType = JSONBody
		field, err := parseField(name, value, stdin, state)
		if err != nil {
			return err
		}
		if !field.IsFile && !json.Valid([]byte(field.Value)) {
			return errors.Errorf("invalid JSON at '%s': %s", name, field.Value)
		}
		in.Body.RawJSONFields = append(in.Body.RawJSONFields, field)
	case httpHeaderItem:
		if !httpguts.ValidHeaderFieldName(name) {
			return errors.Errorf("invalid header field name: %s", name)
		}
		field, err := parseField(name, value, stdin, state)
		if err != nil {
			return err
		}
		if !field.IsFile && !httpguts.ValidHeaderFieldValue(field.Value) {
			return errors.Errorf("invalid value of header field '%s': %q", name, field.Value)
		}
		in.Header = append(in.Header, field)
	case urlParameterItem:
		field, err := parseField(name, value, stdin, state)
		if err != nil {
			return err
		}
		in.Parameters = append(in.Parameters, field)
	default:
		return errors.Errorf("unknown request item: %s", s)
	}
	return nil
}

func splitItem(s string) (itemType, string, string) {
	for i, c := range s {
		switch c {
		case ':':
			if i+1 < len(s) && s[i+1] == '=' {
				return rawJSONFieldItem, s[:i], s[i+2:]
			} else {
				return httpHeaderItem, s[:i], s[i+1:]
			}
		case '=':
			if i+1 < len(s) && s[i+1] == '=' {
				return urlParameterItem, s[:i], s[i+2:]
			} else {
				return dataFieldItem, s[:i], s[i+1:]
			}
		}
	}
	return unknownItem, "", ""
}

func parseField(name, value string, stdin io.Reader, state *state) (Field, error) {
	// TODO: handle escaped "@"
	if strings.HasPrefix(value, "@") {
		if value[1:] == "-" {
			b, err := ioutil.ReadAll(stdin)
			if err != nil {
				return Field{}, errors.Wrapf(err, "reading stdin for '%s'", name)
			}
			state.stdinConsumed = true
			return Field{Name: name, Value: string(b), IsFile: false}, nil
		} else {
			return Field{Name: name, Value: value[1:], IsFile: true}, nil
		}
	} else {
		return Field{Name: name, Value: value, IsFile: false}, nil
	}
}
