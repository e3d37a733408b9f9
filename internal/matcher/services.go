package matcher

import (
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/core"
)

func Provide() pal.ServiceDef {
	return pal.Provide[core.Matcher](&Matcher{})
}
