package grammar

import (
	"sync"

	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

type ruleSet struct {
	scheme abnf.Operator
	port   abnf.Operator
}

var rules = sync.OnceValue(func() *ruleSet {
	core := abnf_core.Operators()
	return &ruleSet{
		scheme: abnf.Concat(
			`scheme`,
			core.ALPHA,
			abnf.Repeat0Inf(
				`*( ALPHA / DIGIT / "+" / "-" / "." )`,
				abnf.Alt(
					`ALPHA / DIGIT / "+" / "-" / "."`,
					core.ALPHA,
					core.DIGIT,
					abnf.Literal(`"+"`, []byte{43}),
					abnf.Literal(`"-"`, []byte{45}),
					abnf.Literal(`"."`, []byte{46}),
				),
			),
		),
		port: abnf.Repeat1Inf(`port`, core.DIGIT),
	}
})

// matchAll reports whether op matches the whole of s.
func matchAll[T ~string | ~[]byte](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()
	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
