package output

type Options struct {
	PrintRequest        bool
	PrintResponseHeader bool
	PrintResponseBody   bool

	EnableColor bool

	OutputFile string
	Overwrite  bool
}
