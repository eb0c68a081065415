// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

// InvadersConfig contains all tunable parameters for the game.
// Dimensions and speeds are in world units; one terminal cell is
// 10 units wide and 20 units tall, and all speeds are per-tick
// displacements at the configured tick rate.
type InvadersConfig struct {
	Player     InvadersPlayer     `yaml:"player"`
	Projectile InvadersProjectile `yaml:"projectile"`
	Wave       InvadersWave       `yaml:"wave"`
}

// InvadersPlayer defines the player ship parameters.
type InvadersPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// InvadersProjectile defines projectile and pool parameters.
type InvadersProjectile struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Speed    int `yaml:"speed"`
	PoolSize int `yaml:"pool_size"`
}

// InvadersWave defines the enemy wave parameters.
type InvadersWave struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	EnemySize int `yaml:"enemy_size"`
	Speed     int `yaml:"speed"`      // horizontal units per tick
	EntryStep int `yaml:"entry_step"` // easing increment while entering from above
}

// DifficultyPreset represents a named difficulty level.
// Presets are static parameter sets; there is no in-game progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	}
	return ""
}
