package users

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Lina4Life/passionart-sub002/utils"
)

const maxImageBytes = 5 << 20 // 5 MiB

// POST /uploads
//
// Accepts a multipart "image" field, stores it in object storage and returns
// the object key plus a presigned URL. The returned key is what members put
// in a post's images list.
func UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "image field is required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image must be 5MB or smaller"})
		return
	}

	// Sniff the real content type from the first bytes
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to read image"})
		return
	}
	detected := http.DetectContentType(head[:n])
	ext := strings.ToLower(filepath.Ext(header.Filename))

	allowed := map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
	defaultExt, ok := allowed[detected]
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image must be JPG, PNG or WEBP"})
		return
	}
	if ext == "" || ext == ".jpeg" {
		ext = defaultExt
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to read image"})
		return
	}
	imageBytes, err := io.ReadAll(file)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to read image"})
		return
	}

	objectKey := utils.GenerateObjectKey(uid, ext)
	presignedURL, err := utils.UploadToS3AndPresign(objectKey, bytes.NewReader(imageBytes), int64(len(imageBytes)), 3600)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to upload image, please try again later"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Image uploaded",
		Data: map[string]interface{}{
			"object_key": objectKey,
			"url":        presignedURL,
		},
	})
}
