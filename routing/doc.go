// Package routing decides which agent role should handle an inbound
// message.
//
// Resolution runs in three stages, cheapest first:
//
//  1. slash-command match: the leading /command token is looked up against
//     the rule table (exact name or alias)
//  2. keyword match: free text is tokenized and scored against each rule's
//     keywords; rules are tried in priority order, ties broken by rule
//     declaration order
//  3. capability inference: the text is scored against the capability
//     catalog's keywords and the best-scoring capability is resolved to a
//     role through the capability manager
//
// When a presence store is configured, roles without a live heartbeat are
// skipped and the next candidate wins. Every route resolves: requests
// nothing claims go to the fallback role.
//
// Rule tables are either the built-in default set or loaded from YAML/JSON.
package routing
