package assets

import "errors"

// ErrPageRender indicates the page template or stylesheet could not be
// loaded or executed.
var ErrPageRender = errors.New("failed to render page")
