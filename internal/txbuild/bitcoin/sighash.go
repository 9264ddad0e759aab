package bitcoin

// EcdsaSighashType tags which parts of a Bitcoin transaction a signature
// commits to. It is consumed as an opaque constant by the signing side and
// never interpreted here.
type EcdsaSighashType uint8

// SighashAll signs all outputs.
const SighashAll EcdsaSighashType = 0x01
