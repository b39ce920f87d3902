package assets

// DefaultBackground is the name of the payslip background image shipped
// with the application.
const DefaultBackground = "payslip_background"

// AssetLoader defines the contract for loading background images.
// Implementations may load from embedded assets or the filesystem.
type AssetLoader interface {
	// LoadBackground loads a background image by name (without the .png
	// extension). Returns ErrBackgroundNotFound if the image doesn't
	// exist and ErrInvalidAssetName if the name contains invalid
	// characters.
	LoadBackground(name string) ([]byte, error)
}
