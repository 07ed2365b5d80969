package state

import (
	"errors"

	"github.com/kk-code-lab/huaga/internal/imaging"
)

var (
	// ErrDecode reports that a file could not be opened as an image.
	ErrDecode = imaging.ErrDecode
	// ErrScale reports that the displayed bitmap could not be rescaled.
	ErrScale = imaging.ErrScale
	// ErrNoNavigableImage reports that no sibling could be opened. It also
	// wraps directory resolution failures.
	ErrNoNavigableImage = errors.New("no navigable image")
)
