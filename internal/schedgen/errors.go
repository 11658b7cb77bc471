package schedgen

import "errors"

// ErrBadConfig reports an unusable generator configuration.
var ErrBadConfig = errors.New("schedgen: bad config")
