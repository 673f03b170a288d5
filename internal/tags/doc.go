// Package tags reads artist, album, and title fields from audio files and
// turns them into names for matching. It never writes tags.
package tags
