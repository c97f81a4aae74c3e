package params

type WebDaemonConfig struct {
	ListenerConfig
	DataDir string

	// ORSConfig is the route source the daemon fetches round trips from.
	ORSConfig *ORSConfig

	SynthConfig SynthConfig
}

func DefaultWebListenerConfig() ListenerConfig {
	return ListenerConfig{
		Network: "tcp",
		Address: "localhost:8080",
	}
}

func DefaultWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		DataDir:        DatadirRoot,
		ListenerConfig: DefaultWebListenerConfig(),
		ORSConfig:      DefaultORSConfig(),
		SynthConfig:    DefaultSynthConfig(),
	}
}
