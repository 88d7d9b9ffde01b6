package service

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveFileFetcher fetches variant source files stored in Google Drive.
// Catalogs reference such files as drive:<fileID>; the composite fetcher
// strips the scheme before calling Fetch.
type DriveFileFetcher struct {
	client *drive.Service
}

// NewDriveFileFetcher creates a new DriveFileFetcher instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewDriveFileFetcher(credentialsPath string) (*DriveFileFetcher, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveFileFetcher{
		client: driveService,
	}, nil
}

// Ensure DriveFileFetcher implements FileFetcherInterface
var _ FileFetcherInterface = (*DriveFileFetcher)(nil)

// Fetch downloads the file content for the given Drive file ID.
func (f *DriveFileFetcher) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := f.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read drive file %s: %w", fileID, err)
	}

	return data, nil
}
