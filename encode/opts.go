package encode

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire selects the single line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
