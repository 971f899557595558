// Package diagnostic reports why a record cannot be given a fixed-layout
// codec. Every error carries a Reason from a closed taxonomy, the record and
// field it concerns, and the source position when known.
package diagnostic
