// Package types defines the entity records, collection keys, configuration,
// and standard errors for the chairside data store.
//
// Every entity is a flat record identified by an opaque string ID. Links
// between entities (PatientID, TreatmentID, ProcedureID) are weak
// references: an ID plus a lookup, with no ownership and no cascade on
// delete. Fields documented as snapshots are copied at creation or save
// time and never re-synchronized with their source record.
package types
