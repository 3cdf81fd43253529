package common

import "math"

// Codeword is the fixed-width integer identifier of a dictionary entry.
// Codewords 0~255 are permanently assigned to the single-byte strings equal
// to the byte value, codeword 256 is reserved and never assigned, dynamic
// entries start at 257.
type Codeword uint32

const (
	// AlphabetSize is the number of single-byte seed entries
	AlphabetSize = 256
	// ReservedCodeword is never assigned to a dictionary entry
	ReservedCodeword Codeword = 256
	// FirstDynamicCodeword is the first codeword assigned during a scan
	FirstDynamicCodeword Codeword = 257
	// MaxSourceLen is the largest source length representable by the length codeword
	MaxSourceLen = math.MaxUint32
)
