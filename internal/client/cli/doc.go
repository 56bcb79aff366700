// Package cli implements the ecotracker command-line interface on top of
// cobra. Each subcommand opens the local session store lazily, so help and
// flag errors never touch the database or the network.
//
//	ecotracker register [username]
//	ecotracker login [username]
//	ecotracker logout
//	ecotracker ping
//	ecotracker log vehicle --distance 12 --fuel petrol [--at RFC3339] [--dry-run]
//	ecotracker log plastic --quantity 0.5 --type bags
//	ecotracker log energy --amount 120 --source electricity [--renewable]
//	ecotracker plant --trees 3 [--species oak] [--location park]
//	ecotracker history [--category vehicle] [--limit 10]
//	ecotracker summary | profile | suggest [--co2 45] | export
package cli
