// Package schema is the field descriptor model shared by the front ends
// (Go packages, YAML schema files) and the planner.
//
// A Record lists its fields in declaration order. That order is the wire
// order and nothing downstream reorders it.
package schema
