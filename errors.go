package polycore

import "errors"

var (
	// ErrNoScene is returned by draw calls and EndScene outside a
	// BeginScene/EndScene bracket.
	ErrNoScene = errors.New("polycore: no scene in progress")

	// ErrSceneInProgress is returned by BeginScene when a scene is already
	// open, and by whole-surface operations that need the color surface
	// unlocked.
	ErrSceneInProgress = errors.New("polycore: scene in progress")

	// ErrIndexOutOfRange is returned when a draw call references a vertex or
	// index outside the supplied buffers. Nothing is drawn.
	ErrIndexOutOfRange = errors.New("polycore: index out of range")

	// ErrInvalidSize is returned for non-positive surface or texture sizes.
	ErrInvalidSize = errors.New("polycore: invalid size")
)
