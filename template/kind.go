package template

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies a synthesized method body. Together with the field count
// it forms the cache key: one compiled generic body exists per (Kind, arity).
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInit        // sequential constructor
	KindNew         // allocation-constructor for frozen records
	KindRepr        // bare-positional representation
	KindReprKeyword // named-field representation
	KindEqual       // ordered field-wise equality
	KindIterate     // lazy iteration over field values
	KindHash        // ordered tuple hash

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsConstructor reports whether the kind builds instances.
func (k Kind) IsConstructor() bool {
	return k == KindInit || k == KindNew
}
