package general

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a short token made of the base 36 millisecond clock
// followed by base 36 random digits. Tokens are unlikely to collide within a
// process but nothing guarantees uniqueness across processes.
func GenerateID() string {
	return generateIDAt(time.Now())
}

func generateIDAt(now time.Time) string {
	random := uuid.New()
	prefix := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(random[8:]), 36)
	return prefix + suffix
}
