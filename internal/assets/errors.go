package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrBackgroundNotFound = errors.New("background image not found")
	ErrInvalidAssetName   = errors.New("invalid asset name")
	ErrInvalidBasePath    = errors.New("invalid asset base path")
	ErrAssetRead          = errors.New("failed to read asset")
	ErrPathTraversal      = errors.New("asset path escapes base directory")
)
