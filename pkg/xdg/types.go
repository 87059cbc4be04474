// pkg/xdg/types.go

package xdg

const (
	// AppName is the directory name used under every XDG base directory.
	AppName = "randpass"

	// Permission modes (in octal)
	DirPermOwnerOnly       = 0700
	FilePermOwnerReadWrite = 0600
)
