package client

import (
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/common"
)

// ErrUnavailable means the server could not be reached in time.
var ErrUnavailable = fmt.Errorf("server unavailable: %w", common.ErrorStore)
