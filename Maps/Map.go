package Maps

// Table is a string keyed associative container holding single character values.
type Table interface {
	Put(key string, val rune) error
	Get(key string) (rune, bool)
	Contains(key string) bool
	Delete(key string)
	Size() int
	IsEmpty() bool
}
