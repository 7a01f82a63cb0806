package thimble

import "github.com/danpasecinic/thimble/internal/reflect"

// Param describes one argument of a real construction: its zero-based
// position, the name of its dynamic type, and the value itself.
type Param struct {
	Position int
	TypeName string
	Value    any
}

// ParamReceiver is the construction-notification capability. A constructed
// type may implement it to receive the arguments it was built with; the
// factory checks for it with a plain type assertion after every real
// construction, so no shared base type is required. Instances served from
// the queued or persistent tiers are never notified.
type ParamReceiver interface {
	ReceiveConstructionParams(params []Param)
}

func constructionParams(args []any) []Param {
	params := make([]Param, len(args))
	for i, arg := range args {
		params[i] = Param{
			Position: i,
			TypeName: reflect.DynamicTypeName(arg),
			Value:    arg,
		}
	}
	return params
}
