package verifier

import (
	"os"

	"github.com/rs/zerolog"
)

// target is the stable string every log record carries, mirroring the
// original pallet's log::trace!(target: "ethereum-beacon-light-client", ...).
const target = "ethereum-beacon-light-client"

// Logger is the package-level logging seam. Swap it with SetLogger in
// an embedding application; library code never constructs its own
// zerolog.Logger so call sites share one sink, the way the teacher
// threads a single configured logger through its provers.
var Logger zerolog.Logger = zerolog.New(os.Stdout).Level(zerolog.TraceLevel).With().Timestamp().Logger()

// SetLogger replaces the package-level Logger.
func SetLogger(l zerolog.Logger) {
	Logger = l
}
