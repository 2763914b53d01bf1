// Package trash moves files to the platform's recoverable trash location.
// A move is distinct from a permanent delete: the user can still recover
// the file through the desktop environment, which is the safety property
// the deletion flow relies on.
package trash

// Move sends the file at path to the trash. Failure is reported so the
// caller can roll back its own bookkeeping; nothing is ever erased
// permanently by this package.
func Move(path string) error {
	return moveToTrash(path)
}
