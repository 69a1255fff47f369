package ctx

// CTXKey is the type used by all keys put in a context.
// As recommended by the package context, fakedata defines and uses its own data type for keys in the use of WithValue.
type CTXKey string

const (
	// CtxLogAttrs holds the slog attributes added to a context via alog.AddAttrs.
	CtxLogAttrs CTXKey = "fakedata.log.attrs"
)
