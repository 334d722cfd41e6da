// Package hebrew implements the pure text analysis core: normalisation of
// Hebrew text to its consonantal skeleton and enumeration of palindromic
// substrings under the resulting letter equivalence.
//
// All functions are pure and synchronous. Callers embedding the scan in an
// interactive surface are responsible for offloading it from UI threads.
package hebrew
