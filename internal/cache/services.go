package cache

import (
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/core"
)

func Provide(config *core.Config) pal.ServiceDef {
	if config.CacheEnabled() {
		return pal.Provide[core.ResultCache](&Redis{})
	}

	return pal.Provide[core.ResultCache](&Noop{})
}
