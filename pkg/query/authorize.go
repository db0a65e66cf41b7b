package query

import (
	"stockroom/pkg/domain/entities"
)

// DefaultMaxPersonnelDepth bounds the personnel traversal. A well-formed
// forest is far shallower; the bound exists so malformed cyclic input
// terminates instead of recursing forever.
const DefaultMaxPersonnelDepth = 32

// Authorizer validates a credential pair against the personnel hierarchy.
// It is a pure predicate: retry and abort policy belong to the caller.
type Authorizer struct {
	maxDepth int
}

// NewAuthorizer creates an authorizer. Non-positive depths fall back to
// DefaultMaxPersonnelDepth.
func NewAuthorizer(maxDepth int) *Authorizer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPersonnelDepth
	}
	return &Authorizer{maxDepth: maxDepth}
}

// Authorize searches the forest depth-first for a member whose credentials
// match, returning true on the first match anywhere in the hierarchy.
func (a *Authorizer) Authorize(forest []*entities.PersonnelMember, userName, password string) bool {
	visited := make(map[*entities.PersonnelMember]struct{})
	for _, root := range forest {
		if a.search(root, userName, password, visited, 0) {
			return true
		}
	}
	return false
}

func (a *Authorizer) search(member *entities.PersonnelMember, userName, password string, visited map[*entities.PersonnelMember]struct{}, depth int) bool {
	if member == nil || depth >= a.maxDepth {
		return false
	}
	if _, seen := visited[member]; seen {
		return false
	}
	visited[member] = struct{}{}

	if member.Credentials(userName, password) {
		return true
	}

	for _, subordinate := range member.HeadOf {
		if a.search(subordinate, userName, password, visited, depth+1) {
			return true
		}
	}
	return false
}
