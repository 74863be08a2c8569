package model

// Unknown is the kind of a server whose role has not been determined yet,
// either because the last heartbeat failed or because no heartbeat has
// completed.
const Unknown ServerKind = 0

// ServerKind represents the role a server plays in a replica set.
type ServerKind uint32

// ServerKind constants.
const (
	RSMember    ServerKind = 2
	RSPrimary   ServerKind = 4 + RSMember
	RSSecondary ServerKind = 8 + RSMember
	RSArbiter   ServerKind = 16 + RSMember
)

// String returns the name of the server kind.
func (k ServerKind) String() string {
	switch k {
	case RSMember:
		return "RSMember"
	case RSPrimary:
		return "RSPrimary"
	case RSSecondary:
		return "RSSecondary"
	case RSArbiter:
		return "RSArbiter"
	}
	return "Unknown"
}
