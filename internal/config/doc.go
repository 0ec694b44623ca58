// Package config loads linkshelf settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/linkshelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Catalog: embedded dataset (catalog_path unset)
//   - Export directory: ~/Downloads
//   - Archive name: Buildings_Links_Archive_<YYYY-MM-DD>.zip
//   - Folder inside the archive: Buildings_Links_Archive
//   - Log file: ~/.local/share/linkshelf/linkshelf.log
//
// # TOML Format
//
//	catalog_path = "~/data/dataset-links.csv"
//	export_dir = "~/Downloads"            # or "s3://bucket/prefix"
//	archive_prefix = "Morocco_Links_Archive"
//	archive_folder = ""                    # empty stores entries at the root
//	log_path = "~/.local/share/linkshelf/linkshelf.log"
//	s3_region = "eu-west-3"
//
// Tilde expansion is performed for every local path. An s3:// export_dir is
// kept verbatim.
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors for unreadable
// files, TOML parse failures and home directory lookup failures.
package config
