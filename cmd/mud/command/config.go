package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickResolution string      `json:"tick_resolution,omitempty"`
	Nats           NatsConfig  `json:"nats"`
	World          WorldConfig `json:"world"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickResolution != "" {
		d, err := time.ParseDuration(c.TickResolution)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_resolution: %w", err))
		} else if d < 10*time.Millisecond {
			el.Add(fmt.Errorf("tick_resolution must be at least 10ms"))
		}
	}

	el.Add(c.Nats.validate())
	el.Add(c.World.validate())

	return el.Err()
}
