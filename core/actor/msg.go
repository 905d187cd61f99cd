package actor

import "github.com/Danconnolly/minactor/core/reflector"

// MsgTyper lets a message choose the name it is logged and measured under.
type MsgTyper interface{ MsgType() string }

func msgTypeOf(x any) string {
	if mt, ok := x.(MsgTyper); ok {
		return mt.MsgType()
	}
	if name := reflector.NameOf(x); name != "" {
		return name
	}
	return "<nil>"
}
