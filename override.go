package fourcc

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking the tagged fields.
//
// They suit hot paths and hand-written or generated code that already knows
// which fields carry which codes.

// Verifiable bypasses reflection when checking decoded values.
type Verifiable interface {
	// VerifyCodes returns an error if any tag field holds the wrong code.
	// Called on freshly unmarshaled data.
	VerifyCodes() error
}

// Stampable bypasses reflection when preparing values for encoding.
type Stampable interface {
	// StampCodes writes the expected code into every tag field.
	// The receiver is a clone, so mutations are safe.
	StampCodes()
}
