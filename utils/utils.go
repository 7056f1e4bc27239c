package utils

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// Matches valid SQL identifiers up to the PostgreSQL limit of 63 bytes.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]{0,62}$`)

func GenerateUuid() string {
	uuid1, err := uuid.NewUUID()
	if err != nil {
		panic("Failed to generate UUID")
	}

	return uuid1.String()
}

// IsSafeIdentifier reports whether name can be interpolated into SQL
// text as a table or column identifier.
func IsSafeIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

func IsDirectoryWritable(path string) bool {
	probe := filepath.Join(path, ".probe")
	if err := os.WriteFile(probe, []byte{}, 0600); err != nil {
		return false
	}

	_ = os.Remove(probe)
	return true
}
