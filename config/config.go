package config

import "time"

type Configs struct {
	Env string

	Api ApiConfigs
	Log LogConfigs
}

type ApiConfigs struct {
	// Endpoints are base urls of the community service. The client picks them
	// in random order and moves to the next one when a call fails at transport
	// level.
	Endpoints   []string
	Timeout     time.Duration
	AccessToken string
}

type LogConfigs struct {
	Level string
}

func Default() Configs {
	return Configs{
		Env: "local",
		Api: ApiConfigs{
			Endpoints: []string{"http://localhost:8080"},
			Timeout:   30 * time.Second,
		},
		Log: LogConfigs{Level: "info"},
	}
}
