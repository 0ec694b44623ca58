// Package archive bundles catalog records into a zip of text files and stores
// the result.
//
// Export renders each record with RenderEntry, writes it as <quadkey>.txt,
// reports progress after every entry and finishes with DEFLATE at level 9.
// The archive is built in memory and either returned whole or not at all.
//
// A Saver decides where the bytes land: DirSaver for a local directory,
// S3Saver for an s3:// destination.
package archive
