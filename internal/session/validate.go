package session

import (
	"fmt"
	"regexp"
)

// maxSocketPath is the smallest sun_path among supported platforms (darwin)
// minus the terminating NUL.
const maxSocketPath = 103

var nameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidateName checks that name is usable as a directory name and that the
// session's socket path stays within the unix socket length limit.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("invalid session name %q: must match %s", name, nameRegexp)
	}
	if p := SocketPath(name); len(p) > maxSocketPath {
		return fmt.Errorf("session %q: socket path %s is %d bytes, limit %d; use a shorter name or CHEFCHAT_HOME",
			name, p, len(p), maxSocketPath)
	}
	return nil
}
