package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default game configuration.
// Kept in sync with defaults/invaders.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: InvadersPlayer{
			Width:  60,
			Height: 20,
			Speed:  8,
		},
		Projectile: InvadersProjectile{
			Width:    4,
			Height:   20,
			Speed:    20,
			PoolSize: 10,
		},
		Wave: InvadersWave{
			Rows:      3,
			Cols:      8,
			EnemySize: 60,
			Speed:     4,
			EntryStep: 8,
		},
	}
}
