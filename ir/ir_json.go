package ir

import (
	"encoding/json"
	"fmt"
)

type irAttr struct {
	Name  string `json:"name"`
	Value *Node  `json:"value,omitempty"`
	Bare  bool   `json:"bare,omitempty"`
}

type irBase struct {
	Type   Type      `json:"type"`
	Atom   *string   `json:"atom,omitempty"`
	Name   string    `json:"name,omitempty"`
	Attrs  []*irAttr `json:"attrs,omitempty"`
	Values []*Node   `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Name:   y.Name,
		Values: y.Values,
	}
	if y.Type == AtomType {
		atom := y.Atom
		base.Atom = &atom
	}
	for _, a := range y.Attrs {
		base.Attrs = append(base.Attrs, &irAttr{Name: a.Name, Value: a.Value, Bare: a.Bare})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Name = tmp.Name
	y.Atom = ""
	if tmp.Atom != nil {
		y.Atom = *tmp.Atom
	}
	y.Attrs = nil
	for _, a := range tmp.Attrs {
		if a == nil {
			return fmt.Errorf("%w: null attribute", ErrBadJSON)
		}
		y.Attrs = append(y.Attrs, &Attr{Name: a.Name, Value: a.Value, Bare: a.Bare})
	}
	y.Values = tmp.Values
	for i, v := range y.Values {
		if v == nil {
			return fmt.Errorf("%w: null value at index %d", ErrBadJSON, i)
		}
		v.Parent = y
		v.ParentIndex = i
	}
	return nil
}

// ToJSON renders the IR itself, not the list notation, as JSON.
func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(y)
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	if err := Validate(res); err != nil {
		return nil, err
	}
	return res, nil
}
