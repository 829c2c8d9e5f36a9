package constants

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultGlobalName is the browser global the client scripts read.
const DefaultGlobalName = "GAME_CONSTANTS"

// MarshalGlobalScript renders c as a script that assigns the table to
// window.<name>, for pages that load it with a plain script tag instead of a
// module import.
func MarshalGlobalScript(c *Constants, name string) ([]byte, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGlobalName, name)
	}

	body, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("window.")
	buf.WriteString(name)
	buf.WriteString(" = ")
	buf.Write(body)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
