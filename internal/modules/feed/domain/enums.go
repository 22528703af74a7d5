//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FetchOutcome classifies how a source fetch ended
// ENUM(ok,warning,failed)
type FetchOutcome string
