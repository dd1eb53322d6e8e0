/*
Package resilience provides a circuit breaker for calls to a remote namespace
server.

# Usage

	breaker := resilience.New("vfs-remote", resilience.Settings{
		Threshold: 5,
		Cooldown:  30 * time.Second,
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("breaker state change", zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})

	err := breaker.Do(func() error {
		return client.Call()
	})

Errors wrapped with Permanent (for example a 4xx response) are returned to the
caller without counting against the remote.

# States

	Closed --[Threshold failures]-> Open --[Cooldown]-> Half-Open --[Probes successes]-> Closed
	                                                        |
	                                                    [failure]
	                                                        v
	                                                      Open
*/
package resilience
