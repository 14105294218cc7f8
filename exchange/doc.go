// Package exchange is the persistence boundary: it encodes the records
// produced by spinorb into the JSON interchange format read by external
// solvers, and decodes solver-side artifacts back.
//
// Every exported field is a (data, description) pair under an exact,
// contractual key name — "state_symmetry", "na", "nb", "nso",
// "symmetry", "spin", "scalar_energy", "oei", "tei" for integral
// records; "energy", "gamma1", "gamma2", "gamma3" for RDM records.
// Files are written whole: the full JSON tree is built in memory and
// persisted in one write, so a failed export never leaves a partial
// record behind. Keys marshal in sorted order with two-space
// indentation, which makes repeated exports byte-identical.
//
// The package also round-trips orbital coefficient blocks
// (WriteCoefficients/ReadCoefficients) and loads flat integral/RDM
// tables into the core dense providers (LoadSource/LoadRDMs) for the
// command-line tool and tests.
package exchange
