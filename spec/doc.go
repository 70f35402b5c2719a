// Package spec reads and writes the YAML document that declares a record.
//
// A document names the record and lists its fields in order. Each entry
// carries a kind tag and the parameters that kind needs:
//
//	name: ble reliability
//	description: sine and triangle test channels
//	fields:
//	  - kind: BitWidth
//	    name: sine
//	    min_value: -5000
//	    max_value: 5000
//	    numb_of_bits: 14
//	  - kind: Resolution
//	    name: triangle
//	    min_value: -10
//	    max_value: 20
//	    resolution: 0.05
//	  - kind: Manual
//	    name: raw counter
//	    length: 10
//	    decode_scale: 1
//	    decode_add: 0
//	  - kind: Bool
//	    name: armed
//
// Template returns such a document with one example of each kind, and
// WriteTemplate stores it next to the user's specs.
package spec
