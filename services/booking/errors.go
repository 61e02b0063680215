package booking

import (
	"fmt"
	"strings"
)

// InvalidTransitionError reports a status change along an edge that does not
// exist in the transition table.
type InvalidTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}
	return fmt.Sprintf("Invalid status transition. Cannot change from %q to %q. Allowed: %s", e.From, e.To, allowed)
}
