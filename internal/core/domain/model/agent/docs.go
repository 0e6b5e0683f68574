// Package agent provides the delivery agent aggregate.
//
// An agent belongs to exactly one store and takes part in round-robin
// assignment only while active. Agents are never deleted; deactivation takes
// them out of rotation while keeping their assignment history intact.
package agent
