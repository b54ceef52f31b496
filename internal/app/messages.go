package app

import "time"

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// ConfigReloadMsg signals that the settings file changed and validated.
type ConfigReloadMsg struct{}
