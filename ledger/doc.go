// Package ledger submits incident reports to the on-chain incident contract
// and serves its read model.
//
// Submission is deliberately not idempotent: every confirmed reportIncident
// call appends a distinct record, so callers must not retry a submission
// whose outcome is unknown. The incident id is recovered from the
// IncidentReported receipt log with a contract-read fallback; a confirmed
// transaction is never failed just because the id could not be recovered.
package ledger
