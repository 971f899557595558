// Package schemafile reads record declarations from YAML.
//
// Records declared this way have no Go definition yet, so the generator
// emits the struct type together with its codec.
//
//	version: "1"
//	package: telemetry
//	endian: little        # informational, the byte order is chosen at run time
//	records:
//	  - name: Header
//	    targets: [decode, size]
//	    fields:
//	      - name: Magic
//	        type: u32
//	      - name: Name
//	        type: u8
//	        array: 16
//	      - name: Trail
//	        type: "[4]int16"
//
// Scalar types accept Go spellings (uint32, byte) and short forms (u32, f64).
// Array lengths are kept as written; anything but a non-negative integer
// literal is rejected when the record is planned.
package schemafile
