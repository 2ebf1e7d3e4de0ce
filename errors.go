package bind

import (
	"github.com/ygrebnov/errorc"
)

var namespace = errorc.Namespace("reactivebind")

// Sentinel errors for directive misconfiguration. They are raised by panic at
// setup time and can be matched with errors.Is.
var (
	ErrEmptyPath       = namespace.NewError("binding path is empty")
	ErrNoContextSource = namespace.NewError("no data context source found in logical ancestry")
	ErrNotObservable   = namespace.NewError("bound endpoint does not expose an observable capability")
)

var newKey = errorc.KeyFactory("reactivebind")

// Structured error field keys.
var (
	KeyProperty = newKey("property")
	KeyPath     = newKey("path")
	KeyTarget   = newKey("target")
	KeyEndpoint = newKey("endpoint")
)
