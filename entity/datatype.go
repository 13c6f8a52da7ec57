package entity

import (
	"fmt"
	"strconv"
)

// Datatype is the declared type of an entity value, by its OVAL name.
type Datatype string

const (
	String          Datatype = "string"
	Version         Datatype = "version"
	EVRString       Datatype = "evr_string"
	Float           Datatype = "float"
	Integer         Datatype = "int"
	Boolean         Datatype = "boolean"
	Binary          Datatype = "binary"
	IPv4Address     Datatype = "ipv4_address"
	IPv6Address     Datatype = "ipv6_address"
	FilesetRevision Datatype = "fileset_revision"
	IOSVersion      Datatype = "ios_version"
	Record          Datatype = "record"
)

func Datatypes() []Datatype {
	return []Datatype{
		String, Version, EVRString, Float, Integer, Boolean, Binary,
		IPv4Address, IPv6Address, FilesetRevision, IOSVersion, Record,
	}
}

func ParseDatatype(v string) (Datatype, error) {
	if v == "integer" {
		return Integer, nil
	}
	for _, d := range Datatypes() {
		if string(d) == v {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDatatype, v)
}

// StringLike reports whether values of d are projected as given.
func (d Datatype) StringLike() bool {
	switch d {
	case String, Version, EVRString:
		return true
	}
	return false
}

// Numeric reports whether Coerce can project values of d.
func (d Datatype) Numeric() bool {
	switch d {
	case Float, Integer, Boolean:
		return true
	}
	return false
}

// canonical returns the normalized text of a float, int or boolean value.
func (d Datatype) canonical(v string) (string, error) {
	switch d {
	case Integer:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		return strconv.FormatInt(i, 10), nil
	case Float:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case Boolean:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		return strconv.FormatBool(b), nil
	}
	return v, nil
}
