// internal/defs/enemies.go
package defs

// Known enemy kinds. The behavior for each is registered in the system package.
const (
	EnemySimple        = "simple"
	EnemyStraightShoot = "straight_shoot"
	EnemyStrafeShoot   = "strafe_shoot"
)

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	ID            string `yaml:"id"`
	Health        int    `yaml:"health"`
	ScoreValue    int    `yaml:"score_value"`
	ContactDamage int    `yaml:"contact_damage"`
	// Downward speed is SpeedBase + rand(SpeedSpread*100)*0.01.
	SpeedBase   float64      `yaml:"speed_base"`
	SpeedSpread float64      `yaml:"speed_spread"`
	Collision   CollisionDef `yaml:"collision"`
	Animation   AnimationDef `yaml:"animation"`
	Shot        *ShotDef     `yaml:"shot,omitempty"`
	Strafe      *StrafeDef   `yaml:"strafe,omitempty"`
}

// StrafeDef makes an enemy sway horizontally while it descends.
type StrafeDef struct {
	Amplitude float64 `yaml:"amplitude"` // peak horizontal speed per tick
	Period    int     `yaml:"period"`    // ticks per full sway
}
