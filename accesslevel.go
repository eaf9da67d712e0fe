package gitlab

import (
	"strings"

	"github.com/jmgilman/go/errors"
)

// AccessLevel represents a membership permission level. GitLab encodes levels
// as fixed numeric codes on the wire.
type AccessLevel int

// Membership access levels.
const (
	// AccessLevelGuest grants read access to issues and wiki pages.
	AccessLevelGuest AccessLevel = 10

	// AccessLevelReporter additionally grants read access to the repository.
	AccessLevelReporter AccessLevel = 20

	// AccessLevelDeveloper additionally grants push access.
	AccessLevelDeveloper AccessLevel = 30

	// AccessLevelMaster additionally grants project administration.
	AccessLevelMaster AccessLevel = 40

	// AccessLevelOwner grants full control. Only valid for group membership.
	AccessLevelOwner AccessLevel = 50
)

// ParseAccessLevel translates a case-insensitive level name ("guest",
// "reporter", "developer", "master", "owner") into its numeric code.
// Unrecognized names are rejected uniformly for both project and group
// membership rather than silently defaulting to guest.
func ParseAccessLevel(name string) (AccessLevel, error) {
	switch strings.ToLower(name) {
	case "guest":
		return AccessLevelGuest, nil
	case "reporter":
		return AccessLevelReporter, nil
	case "developer":
		return AccessLevelDeveloper, nil
	case "master":
		return AccessLevelMaster, nil
	case "owner":
		return AccessLevelOwner, nil
	}

	err := errors.Newf(errors.CodeInvalidInput, "unknown access level: %q", name)
	return 0, errors.WithContext(err, "field", "access_level")
}

// String returns the canonical level name, or "unknown" for values outside
// the defined set.
func (l AccessLevel) String() string {
	switch l {
	case AccessLevelGuest:
		return "guest"
	case AccessLevelReporter:
		return "reporter"
	case AccessLevelDeveloper:
		return "developer"
	case AccessLevelMaster:
		return "master"
	case AccessLevelOwner:
		return "owner"
	}
	return "unknown"
}

// valid reports whether the level is one of the defined codes.
func (l AccessLevel) valid() bool {
	switch l {
	case AccessLevelGuest, AccessLevelReporter, AccessLevelDeveloper, AccessLevelMaster, AccessLevelOwner:
		return true
	}
	return false
}

// checkAccessLevel rejects levels outside the defined set before they reach
// the wire.
func checkAccessLevel(level AccessLevel) error {
	if !level.valid() {
		err := errors.Newf(errors.CodeInvalidInput, "invalid access level: %d", int(level))
		return errors.WithContext(err, "field", "access_level")
	}
	return nil
}
