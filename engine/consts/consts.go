package consts

// Tunable Options
const (
	// DEFAULT_COMPRESS_FORMAT is the compress format used when the config does not set one
	DEFAULT_COMPRESS_FORMAT = "lzw"

	// COMPRESSED_FILE_SUFFIX is appended to output file names by golzw compress
	COMPRESSED_FILE_SUFFIX = ".lzw"

	// OUTPUT_FILE_MODE is the file mode of files written by golzw
	OUTPUT_FILE_MODE = 0644

	// DEBUG_STREAMS enables verbose logging of buffer sizes, set to false except when debugging
	DEBUG_STREAMS = false
)
