package bytex

// Environment variable names
const (
	// EnvEndian selects the byte order used when a type declares none.
	// One of little, big or native. Default: little
	EnvEndian = "BYTEX_ENDIAN"

	// EnvHexMode selects how the CLI renders hex text.
	// One of lower, upper, lower0x or upper0x. Default: lower
	EnvHexMode = "BYTEX_HEX_MODE"

	// EnvDigest names the digest used by the hash command. Default: sha256
	EnvDigest = "BYTEX_DIGEST"

	// EnvLogLevel is one of debug, info, warn or error. Default: info
	EnvLogLevel = "BYTEX_LOG_LEVEL"

	// EnvLogFormat is json or text. Default: text
	EnvLogFormat = "BYTEX_LOG_FORMAT"
)

// Default values
const (
	DefaultEndian    = Little
	DefaultHexMode   = HexLower
	DefaultDigest    = SHA256
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// DefaultEnvFile is loaded by LoadConfigFromEnvironment when present.
	DefaultEnvFile = ".env"
)
