package input

type Options struct {
	JSON      bool
	Form      bool
	ReadStdin bool

	// Profile defaults. Header holds default headers; command-line headers override them.
	BaseURL string
	Header  map[string]string
}

type BodyType int

const (
	EmptyBody BodyType = iota
	JSONBody
	FormBody
	RawBody
)

type Body struct {
	BodyType      BodyType
	Fields        []Field
	RawJSONFields []Field // used only when BodyType == JSONBody
	Raw           []byte  // used only when BodyType == RawBody
}

type Field struct {
	Name   string
	Value  string
	IsFile bool
}

// items collects the request items of a command line before they are
// turned into a request.Spec.
type items struct {
	Header     []Field
	Parameters []Field
	Body       Body
}
