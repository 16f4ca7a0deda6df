// internal/event/types.go
package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: EnemyDestroyedData
	PlayerHit      EventType = "PlayerHit"      // Data: PlayerHitData
	PlayerDied     EventType = "PlayerDied"     // Data: nil
	RoundStarted   EventType = "RoundStarted"   // Data: nil
	RoundReset     EventType = "RoundReset"     // Data: nil
	SpawnSkipped   EventType = "SpawnSkipped"   // Data: SpawnSkippedData
)

// EnemyDestroyedData describes how an enemy left play. Killed is false when
// it flew off the screen or rammed the player; only killed enemies score.
type EnemyDestroyedData struct {
	Kind       string
	ScoreValue int
	Killed     bool
}

type PlayerHitData struct {
	Damage int
	HP     int
}

// SpawnSkippedData reports a spawn dropped because its pool was full.
type SpawnSkippedData struct {
	Pool string
}
