// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the wizard to function:
//
//   - AnalysisService: One structured-output call per year analysis
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LocationService: Geo-grounding enrichment. Without it, the dashboard
//     shows bare place names.
//   - ImageService: Cover image generation. Without it, the wizard stops
//     at the dashboard.
//   - CredentialGate: Host credential selection, consulted only by the
//     cover generation path.
//   - PromptStore: User-editable prompt templates. Without it, services
//     use hardcoded defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
