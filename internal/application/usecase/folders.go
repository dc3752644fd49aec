package usecase

// Carpetas definitivas de los archivos de cada entidad.
const (
	BrandFolder    = "brands"
	CategoryFolder = "categories"
	ProductFolder  = "products"
	AvatarFolder   = "avatars"
)

// AssetFolders las únicas carpetas que se sirven por HTTP (tmp/ queda fuera).
var AssetFolders = []string{BrandFolder, CategoryFolder, ProductFolder, AvatarFolder}
