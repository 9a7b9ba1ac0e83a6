package model

import (
	"sort"
	"strings"
)

// Project scopes which task definitions are fetched and labels occurrences
// in a consolidated calendar.
type Project struct {
	ID   string
	Name string
}

// ProjectScope is the set of projects a window load covers.
type ProjectScope struct {
	ProjectIDs []string
}

// Key is a stable identifier of the scope, independent of ID order.
func (s ProjectScope) Key() string {
	ids := append([]string(nil), s.ProjectIDs...)
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// Empty reports whether no project is in scope.
func (s ProjectScope) Empty() bool {
	return len(s.ProjectIDs) == 0
}
