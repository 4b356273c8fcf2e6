package pricing

// Category is a room type with an associated nightly rate. The set of
// categories is closed per deployment (configured at startup), but values
// read back from storage may name categories that have since been removed
// from the rate table; those are still valid Category values.
type Category string

const (
	CategorySingle Category = "Single"
	CategoryDouble Category = "Double"
	CategorySuite  Category = "Suite"
)

func (c Category) String() string {
	return string(c)
}
