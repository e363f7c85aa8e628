// Package ports defines the inbound and outbound ports (interfaces) used to
// decouple the verification core from adapters.
//
// Ports are the boundary between the domain/application and the
// infrastructure. Interfaces represent the contracts adapters must satisfy;
// adapters implement concrete behavior using external SDKs (go-ethereum,
// bbolt, net/http). Each interface includes an "Error Contract" in comments
// describing the sentinel errors implementations return.
//
// Files and responsibilities
// --------------------------
//   - inbound.go
//   - VerificationService: the operations the routing layer drives.
//   - outbound.go
//   - AddressValidator, DeclarationFetcher, ApprovalSigner: per-request
//     collaborators of the orchestrator.
//   - KeyValueStore, Counters, VerificationRecorder: the durable state
//     surface backing idempotent verification accounting.
package ports
