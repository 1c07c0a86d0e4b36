// Package component provides stock engine components: quit handling, key
// press recording, mouse tracking, frame rate locking, and a debug overlay.
// InstallDefaults registers the set most applications want.
package component
