package replacet

import "fmt"

var (
	// ErrConfiguration is returned before any traversal when the configuration is unusable.
	ErrConfiguration = fmt.Errorf("invalid configuration")
	// ErrResourceLoad is reported when a namespace file can not be read or parsed.
	ErrResourceLoad = fmt.Errorf("cannot load resource file")
	// ErrKeyNotFound is reported when a namespace or a path within it does not resolve to a string.
	ErrKeyNotFound = fmt.Errorf("key not found")
	// ErrUnsupportedFeature aborts a transform, see Transformer.Transform.
	ErrUnsupportedFeature = fmt.Errorf("unsupported feature")
	// ErrMalformedTemplate is reported when a resolved value can not be turned into an expression.
	ErrMalformedTemplate = fmt.Errorf("malformed template")
)
