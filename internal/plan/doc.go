// Package plan turns a schema.Record into a RecordPlan: one access strategy
// per field, in declaration order, with byte offsets and the total size.
//
// Planning is all-or-nothing per record. Every field is examined so that a
// single run reports every problem, but a record with any error yields no
// plan and therefore no generated code.
package plan
