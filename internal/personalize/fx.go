package personalize

import "go.uber.org/fx"

var Module = fx.Module("personalize",
	fx.Provide(NewEngine),
)
