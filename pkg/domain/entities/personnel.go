package entities

// PersonnelMember is one node in the authorized-personnel hierarchy. A member
// may head a team of subordinate members, forming a forest; a member with an
// empty HeadOf is a leaf. Parents exclusively own their subordinates, so a
// well-formed forest has no shared nodes and no cycles.
type PersonnelMember struct {
	UserName string
	Password string
	HeadOf   []*PersonnelMember
}

// IsLeaf reports whether the member heads no subordinates.
func (m *PersonnelMember) IsLeaf() bool {
	return len(m.HeadOf) == 0
}

// Credentials reports whether the member's own credentials match the given
// pair. Plaintext comparison is intentional: the record store carries
// plaintext passwords and real authentication is out of scope.
func (m *PersonnelMember) Credentials(userName, password string) bool {
	return m.UserName == userName && m.Password == password
}
