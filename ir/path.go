package ir

import (
	"strconv"
)

// Path returns the location of y within its root.  Elements contribute
// "/name", other nodes their index in brackets, for example
// "$/rpminfo_object/name[0]".
func (y *Node) Path() string {
	seg := ""
	if y.Type == ElementType {
		seg = "/" + y.Name
	}
	if y.Parent == nil {
		return "$" + seg
	}
	if seg == "" {
		seg = "[" + strconv.Itoa(y.ParentIndex) + "]"
	}
	return y.Parent.Path() + seg
}
