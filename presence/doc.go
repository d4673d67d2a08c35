// Package presence tracks which agent roles are currently live and how
// loaded they are.
//
// The capability matrix is static: it says what each role could handle if it
// were running. Presence is the runtime overlay: agent processes heartbeat
// their role periodically and the router skips roles whose heartbeat has
// expired.
//
// Two Store implementations are provided: MemoryStore for single-process
// deployments and tests, and RedisStore for deployments where several bot
// processes share one view of agent liveness.
package presence
