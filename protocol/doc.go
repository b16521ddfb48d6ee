// Package protocol holds the plumbing shared by every WAKE backend package
// (protocol/compilerbp, protocol/compilergm17, protocol/optimizedbp,
// protocol/optimizedgm17): canonical session tables (Nonces, VkTable),
// canonical message envelopes and their toString encodings, and the
// sentinel error kinds a driver aborts with. The original source
// duplicates this plumbing inside each protocol file since its module
// system has no internal-visibility equivalent across files; one shared Go
// package makes sharing it the natural rendition instead of a
// faithful-but-pointless four-way copy.
package protocol
