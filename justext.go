// Package justext extracts the main content of an HTML document with the
// jusText boilerplate removal algorithm.
//
// A cleaned document is segmented into text blocks, every block gets a
// context-free classification (bad, good, near-good or short) and a
// context-sensitive pass then revises short and near-good blocks by looking
// at their neighbours. Only good blocks are considered content.
//
// This package contains domain types, the core algorithm and the interfaces
// of its collaborators. Implementations live in subdirectories named after
// their primary dependency (e.g., goquery/, sqlite/, lingua/).
package justext
