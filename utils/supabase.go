package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const mediaBucket = "wedding-media"

// UploadToSupabase pushes an uploaded file into the media bucket and
// returns its public URL.
func UploadToSupabase(fh *multipart.FileHeader, objectID string, folder string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	ext := filepath.Ext(fh.Filename)

	objectPath := fmt.Sprintf("%s%s", objectID, ext)
	if folder != "" {
		objectPath = fmt.Sprintf("%s/%s%s", folder, objectID, ext)
	}

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile(mediaBucket, objectPath, f, options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl(mediaBucket, objectPath)
	return publicURL.SignedURL, nil
}
