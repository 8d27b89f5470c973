// Package signature parses and normalizes the metric signature of a Clifford
// algebra: a string over {'+','-'} whose i-th character says whether the i-th
// generator squares to +1 or −1.
//
// Parse turns the string into an immutable Signature carrying both the
// original text (the identity key used by the registry) and the numeric
// per-generator squares. Validate and Clean are pure helpers with no side
// effects. The empty string stands for an absent signature and never validates.
package signature
