package bitcode

// Bitcode Wrapper magic number and version.
const (
	// WrapperMagic is 'B' 'C' 0xC0 0xDE read as a little-endian uint32.
	WrapperMagic uint32 = 0xDEC04342

	// WrapperVersion is the only wrapper version accepted.
	WrapperVersion uint32 = 1
)

// Fixed sizes of the container layout.
const (
	MagicSize            = 4  // leading magic number
	WrapperHeaderSize    = 16 // version, offset, size, reserved
	WrapperDefaultOffset = 16 // bitstream immediately after the header
)

// ContainerKind identifies which container variant a file holds.
type ContainerKind uint8

const (
	KindRaw     ContainerKind = iota // bare bitstream, any magic
	KindWrapper                      // Bitcode Wrapper header
)

func (k ContainerKind) String() string {
	switch k {
	case KindWrapper:
		return "wrapper"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Field paths reported in errors.
var (
	pathMagic      = []string{"seq", "0"}
	pathVersion    = []string{"types", "wrapper_file", "seq", "0"}
	pathOffset     = []string{"types", "wrapper_file", "seq", "1"}
	pathSize       = []string{"types", "wrapper_file", "seq", "2"}
	pathReserved   = []string{"types", "wrapper_file", "seq", "3"}
	pathBitstream  = []string{"types", "wrapper_file", "instances", "bitstream"}
	pathPayload    = []string{"types", "raw_bitcode_container", "seq", "0"}
	pathFullStream = []string{"types", "raw_bitcode_container", "instances", "full_stream"}
)
