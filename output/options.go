package output

type Options struct {
	PrintRequestHeader  bool
	PrintRequestBody    bool
	PrintResponseHeader bool
	PrintResponseBody   bool
	PrintParameters     bool

	EnableFormat bool
	EnableColor  bool

	Download   bool
	OutputFile string
	Overwrite  bool
}

// PrintsRequest reports whether any part of the outgoing request is shown.
func (o *Options) PrintsRequest() bool {
	return o.PrintRequestHeader || o.PrintRequestBody || o.PrintParameters
}
