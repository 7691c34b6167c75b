package event

import (
	"github.com/polywars/arena/internal/core/ecs"
	"github.com/polywars/arena/internal/geom"
)

// EnemySpawned is emitted when the spawner places a new enemy.
type EnemySpawned struct {
	EntityID ecs.EntityID
	Vertices int
	Pos      geom.Vec2
	Manual   bool
}

// EnemyKilled is emitted when a bullet destroys a full-size enemy.
type EnemyKilled struct {
	EntityID  ecs.EntityID
	Points    int64
	Fragments int
}

// SmallEnemyKilled is emitted when a bullet destroys a fragment.
type SmallEnemyKilled struct {
	EntityID ecs.EntityID
	Points   int64
}

// PlayerHit is emitted when an enemy or fragment reaches the player.
type PlayerHit struct {
	By        ecs.EntityID
	ByTag     string
	LostScore int64
}
