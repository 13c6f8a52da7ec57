package oval

import "github.com/signadot/oval/ir"

// Validate checks that obj is a well formed object: a valid tree whose
// root is an element.
func Validate(obj *ir.Node) error {
	if err := ir.Validate(obj); err != nil {
		return err
	}
	if !obj.IsElement() {
		return notElement(obj)
	}
	return nil
}
