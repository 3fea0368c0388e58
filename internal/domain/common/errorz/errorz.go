package errorz

import (
	"errors"
	"fmt"
)

// Error families. Concrete failures wrap one of these so callers can branch
// with errors.Is without matching message text.
var (
	Validation = errors.New("validation error")
	Resource   = errors.New("resource error")
	Encoding   = errors.New("encoding error")
)

var (
	EmptyContent = fmt.Errorf("%w: content is empty", Validation)
	EmptySSID    = fmt.Errorf("%w: SSID is required", Validation)
	EmptyAddress = fmt.Errorf("%w: email address is required", Validation)
	EmptyNumber  = fmt.Errorf("%w: phone number is required", Validation)
	EmptyURL     = fmt.Errorf("%w: URL is required", Validation)
	EmptyName    = fmt.Errorf("%w: name is required", Validation)
)
