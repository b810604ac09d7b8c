package cli

import (
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/common"
)

func errNoSuchEvent(key string) error {
	return fmt.Errorf("event %q: %w", key, common.ErrorNotFound)
}
