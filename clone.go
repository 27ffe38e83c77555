package fourcc

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// Encode stamps expected codes into a clone, so the Clone method must return
// a copy whose modification does not affect the original value. For types
// containing pointers, slices, or maps, ensure these are also copied.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (h WaveHeader) Clone() WaveHeader { return h }
//
// For types with nested pointers, copy the pointees:
//
//	func (f File) Clone() File {
//	    c := f
//	    if f.Format != nil {
//	        format := *f.Format
//	        c.Format = &format
//	    }
//	    return c
//	}
type Cloner[T any] interface {
	Clone() T
}
