package match

import (
	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&APIMatch{}),
		pal.Provide(&Server{}),
		pal.Provide(&Echo{}),
	)
}
