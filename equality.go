package jsonschema

// jsonEqual reports whether a and b are equal under JSON-Schema equality semantics:
// numbers compare by mathematical value regardless of Go's int/float64 representation,
// and object comparison is key-order-independent. Built on top of normalizeValue (see
// uniqueItems.go), which already normalizes both of these concerns for array-uniqueness
// checks — const/enum need exactly the same notion of equality, so they reuse it rather
// than comparing with reflect.DeepEqual, which treats 1 and 1.0 as distinct.
func jsonEqual(a, b any) bool {
	na, errA := normalizeValue(a)
	nb, errB := normalizeValue(b)
	if errA != nil || errB != nil {
		return false
	}
	return na == nb
}
