// Package jsonfile reads and writes the registry interchange file: a flat
// JSON object mapping lowercase tags to element records. This file is the
// artifact the query side embeds, so its shape and field names are fixed.
package jsonfile
