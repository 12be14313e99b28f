package simplicity

// TapleafVersion is the reserved Taproot leaf version for Simplicity
// scripts on Elements chains. A Simplicity leaf's script payload is the
// 32-byte CMR of the program, tagged with this version byte.
//
// This constant is protocol-fixed and must match the value used by the
// rest of the Simplicity tooling.
const TapleafVersion byte = 0xbe
