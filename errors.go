package floor

import "errors"

// Public error values for the floor package.
var (
	// ErrMalformedStream indicates the setup header violates a structural
	// constraint of the floor configuration: an unknown dispatch type, a
	// duplicate x_list entry, a codebook index outside the shared table,
	// or a floor0 order below six. Setup errors are fatal for the stream.
	// Floor0's Unpack also returns it when a packet selects a book number
	// beyond the configured book list.
	ErrMalformedStream = errors.New("floor: malformed stream")

	// ErrEndOfPacket is returned by a PacketReader (or a Codebook reading
	// through one) when the packet is exhausted mid-read. Unpack catches
	// this internally and converts it into a silent floor; it is never
	// returned from Unpack itself.
	ErrEndOfPacket = errors.New("floor: end of packet")
)
