// Package config provides simple, local-first configuration for campuspath.
//
// Configuration lives in the project's .campuspath/ directory:
//
//	.campuspath/
//	├── config.json   # Settings (committed to git)
//	├── .gitignore    # Ignores logs
//	└── debug.log     # Written only when debug is on
//
// config.json holds flat key-value settings:
//
//	{
//	  "theme": "campus",
//	  "debug": false,
//	  "catalog_path": "",
//	  "map_path": "docs/campus_map.md",
//	  "id_strategy": "counter",
//	  "search_timeout": "30s"
//	}
//
// A .env file next to the project is loaded before the config file, and
// string values may reference environment variables with $VAR or ${VAR}:
//
//	{
//	  "catalog_path": "${CAMPUS_CATALOG}"
//	}
//
// CAMPUSPATH_THEME and CAMPUSPATH_DEBUG override the file.
//
// Relative catalog_path and map_path values resolve against the project
// directory.
package config
