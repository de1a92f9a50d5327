package scssvalue

// CallArgs is the actual-argument list at a mixin/function/builtin call
// site: values by position and values by name. A "..." spread argument is
// not unpacked into it.
type CallArgs struct {
	Positional []Value
	Named      map[string]Value
}

func NewCallArgs() CallArgs {
	return CallArgs{Named: map[string]Value{}}
}

// Get resolves a formal parameter by name first, then by its position
// among the remaining positional arguments — positional by index and
// named by identifier.
func (a CallArgs) Get(name string, index int) (Value, bool) {
	if v, ok := a.Named[name]; ok {
		return v, true
	}
	if index >= 0 && index < len(a.Positional) {
		return a.Positional[index], true
	}
	return Value{}, false
}
