// Package volontulo defines the records of the volunteering platform that
// fixtures and seeders produce: users with their profiles, organizations and
// volunteer offers. It also declares the Storage contract those records are
// persisted through.
//
// Subpackages:
//
//   - factory:  builds records with randomized Polish-locale values
//   - memstore: in-memory Storage for tests and dry runs
//   - pgstore:  PostgreSQL Storage with embedded migrations
//   - seed:     populates a Storage with a configurable amount of records
package volontulo
