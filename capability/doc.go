// Package capability defines the static capability taxonomy of the KICKAI
// multi-agent team assistant and answers capability/agent lookup queries
// against it.
//
// The package is built around three tables that are assembled once and never
// mutated afterwards:
//
//   - a catalog of CapabilityDefinition entries describing every named skill,
//     its tier, category, and its place in a loose hierarchy
//   - a derived hierarchy index (parents, children, dependencies per
//     capability)
//   - an ordered agent matrix mapping each AgentRole to the capabilities it
//     holds, with per-capability proficiency scores
//
// A Manager is constructed explicitly from a catalog and a matrix and passed
// to consumers; there is no package-level singleton. Construction validates
// the tables (no dangling references, proficiency in range, symmetric
// parent/child edges) so queries never have to.
//
// Lookups are permissive: an unknown capability or role resolves to a zero
// value or an empty slice, never to an error.
package capability
