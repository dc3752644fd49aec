package dto

// UploadResponse referencia temporal de un archivo subido; se envía luego en logoPath,
// imagePath o avatarPath para que el servicio lo mueva a su carpeta definitiva.
type UploadResponse struct {
	Reference string `json:"reference"`
	Size      int64  `json:"size"`
}
