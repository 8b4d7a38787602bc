// Package cli provides CLI infrastructure for td.
package cli

import (
	"strings"

	"github.com/jacksmith/td/internal/model"
)

// ResolveTask finds the task a user reference names. An exact id match
// wins; otherwise the reference must be a prefix of exactly one id.
func ResolveTask(ref string, tasks model.TaskList) (*model.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &ValidationError{Field: "task", Message: "id must not be empty"}
	}

	if t := tasks.Find(ref); t != nil {
		return t, nil
	}

	var matches []string
	for _, id := range tasks.IDs() {
		if strings.HasPrefix(strings.ToLower(id), strings.ToLower(ref)) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Ref: ref}
	case 1:
		return tasks.Find(matches[0]), nil
	default:
		return nil, &AmbiguousError{Ref: ref, Matches: matches}
	}
}
