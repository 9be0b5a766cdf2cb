package core

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random UUID string. If the system random source is not
// available it falls back to a time-based id with a pseudo-random suffix.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackID(time.Now())
}

func fallbackID(now time.Time) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < 8; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// Now returns the current time in UTC at millisecond precision, the
// resolution persisted timestamps are kept at.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
