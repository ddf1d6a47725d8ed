package application

import (
	"fmt"
	"strings"

	"github.com/bnema/officehours/internal/domain"
)

var recordKinds = map[string]domain.EventKind{
	"start":  domain.EventStart,
	"stop":   domain.EventStop,
	"lock":   domain.EventLock,
	"unlock": domain.EventUnlock,
}

// ParseRecordKind maps a user supplied kind to its canonical log token.
func ParseRecordKind(raw string) (domain.EventKind, error) {
	kind, ok := recordKinds[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unsupported event kind %q (want start, stop, lock or unlock)", raw)
	}

	return kind, nil
}
