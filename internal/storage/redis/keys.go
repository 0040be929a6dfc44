package redis

import (
	"fmt"

	"github.com/mcoot/stackline/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "stackline"

// gameKey returns the Redis key for a Game record (without its placements)
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// placementsKey returns the Redis key for the LIST of placements of a game
func placementsKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s:placements", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// eventsChannel returns the pub/sub channel carrying game events
func eventsChannel() string {
	return fmt.Sprintf("%s:events", keyPrefix)
}
