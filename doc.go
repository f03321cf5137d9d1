// Package bitchess implements a bitboard-based legal chess move generator.
//
// It exposes a Position type backed by six piece bitboards and two color
// bitboards, magic-bitboard (or parallel-bit-extract) sliding attack lookup,
// Zobrist hashing, and a legal move generator that resolves pins and check
// evasion without ever generating a pseudo-legal move and verifying it by
// playing and unplaying it. Search, evaluation, opening books, transposition
// tables, Chess960 castling and variant rules are outside this package.
package bitchess
