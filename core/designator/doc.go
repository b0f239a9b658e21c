// Package designator canonicalizes reference designators and explodes
// multi-designator cells.
//
// A designator has a display form (what the operator typed) and a canonical
// form used as the comparison key. Loose canonicalization upper-cases and trims;
// strict canonicalization additionally drops every character outside
// [A-Za-z0-9], so the token "d 1" and "D1" compare equal.
//
// Explosion splits one cell into discrete designators and runs before
// canonicalization. ExplodeFull splits on whitespace, which breaks "d 1" apart,
// so DefaultExplode pairs Strict with ExplodeDelimiters. The same splitter backs
// Count, so the quantity of a row always equals the number of tokens exploded
// from it.
package designator
