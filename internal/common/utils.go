package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// RandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding them, so the final string length is twice the size.
//
// It returns an error if the random number generator fails.
func RandHexString(size int) (string, error) {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewLeadID builds an opaque lead identifier from the current unix-millisecond
// timestamp and a random hex suffix. The scheme is time-sortable and treats
// the collision probability as negligible; it is not cryptographically unique.
func NewLeadID() (string, error) {
	suffix, err := RandHexString(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix), nil
}

// NowISO returns the current UTC time as an RFC3339 string with millisecond
// precision. All record timestamps use this format so that lexicographic
// comparison matches chronological order.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
