package recommend

import "go.uber.org/fx"

var Module = fx.Module("recommend",
	fx.Provide(func() (*Engine, error) {
		return NewEngine(DefaultConfig())
	}),
)
