// Package logtail reads the tail of the linkshelf log file for the activity
// view.
//
// # Reading Log Files
//
// The Read function uses a ring buffer to extract the last maxLines from a
// file in one pass with O(maxLines) memory. A missing file is not an error;
// the log is only created once something is written.
//
//	lines, err := logtail.Read(cfg.LogPath, 200)
//
// # Formatting
//
// The log file holds zerolog JSON lines. Parse decodes one line into an Entry
// and Format renders it compactly:
//
//	{"level":"info","export_id":"1f…","items":2,"time":"…","message":"export started"}
//	→ 14:03:11 INFO export started export_id=1f… items=2
//
// Lines that are not JSON are shown verbatim.
package logtail
