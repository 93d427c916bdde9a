// Package catalog holds the read-only building directory that queue
// entries refer to.
//
// A Catalog is built once, either from the bundled campus directory
// (Default) or from a JSON file (LoadFile), and never changes afterwards:
//
//	[
//	  {"id": "ADM", "name": "Administration"},
//	  {"id": "ENG", "name": "Engineering"}
//	]
//
// Ids are unique within a catalog. Display order is the order entries
// were supplied in.
package catalog
