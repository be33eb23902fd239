package store

import "strings"

const (
	GlobalKeyPrefix = "flashdeck"
)

// GenerateStorageKey generates a namespaced storage key for a given object
// type and identifier.
func GenerateStorageKey(objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, objectType, identifier}, ":")
}

// Keys for the three persisted records.
var (
	DecksKey    = GenerateStorageKey("decks", "all")
	SessionKey  = GenerateStorageKey("session", "current")
	ProgressKey = GenerateStorageKey("progress", "user")
)
