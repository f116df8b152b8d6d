// Package gamma implements Elias gamma coding, a prefix-free
// variable-length encoding for positive integers.
//
// Gamma codes favor small values, which makes them a good fit for
// skewed integer distributions such as document-ID gaps in inverted
// indexes. A value x is written as floor(log2 x) zero bits, a one bit,
// then the binary form of x with its leading one removed, so the code
// for x occupies 2*floor(log2 x)+1 bits. No codeword is a prefix of
// another, so concatenated codes parse unambiguously without
// delimiters.
//
// The wire representation is a BitSet, an abstract bit sequence; how
// that sequence is packed into bytes or stored is left to the caller.
package gamma
