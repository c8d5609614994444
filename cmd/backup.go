package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelfd/core/storage"
	"shelfd/feature/catalog/models"
)

// backupCmd is the parent command for snapshot backup operations.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the catalog snapshot to object storage",
	Long: `Push the persisted catalog snapshot to an S3-compatible bucket,
or pull a previously pushed snapshot back into the local database.

Examples:
  # Push the current snapshot
  shelfd backup push

  # Restore the snapshot from the bucket
  shelfd backup pull`,
}

var backupPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the local snapshot to the bucket",
	RunE:  runBackupPush,
}

var backupPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the snapshot from the bucket into the local database",
	RunE:  runBackupPull,
}

func init() {
	backupCmd.AddCommand(backupPushCmd)
	backupCmd.AddCommand(backupPullCmd)
	RootCmd.AddCommand(backupCmd)
}

// backupObjectName is where a slot lives inside the bucket.
func backupObjectName(slot string) string {
	return "snapshots/" + slot + ".json"
}

func runBackupPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	payload, err := a.snap.Load(ctx, a.cfg.Catalog.SnapshotSlot)
	if err != nil {
		return fmt.Errorf("nothing to back up: %w", err)
	}

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	bucket := a.cfg.Storage.Bucket
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: a.cfg.Storage.Region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	objectName := backupObjectName(a.cfg.Catalog.SnapshotSlot)
	_, err = client.PutObject(ctx, bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	a.log.Info("snapshot pushed",
		zap.String("bucket", bucket),
		zap.String("object", objectName),
		zap.Int("bytes", len(payload)),
	)
	return nil
}

func runBackupPull(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cliNotify)
	if err != nil {
		return err
	}

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	objectName := backupObjectName(a.cfg.Catalog.SnapshotSlot)
	obj, err := client.GetObject(ctx, a.cfg.Storage.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	// Refuse to overwrite the local slot with something that is not a
	// catalog snapshot.
	var books []models.Book
	if err := json.Unmarshal(payload, &books); err != nil {
		return fmt.Errorf("fetched object is not a catalog snapshot: %w", err)
	}

	if err := a.snap.Save(ctx, a.cfg.Catalog.SnapshotSlot, payload); err != nil {
		return err
	}

	a.log.Info("snapshot pulled",
		zap.String("object", objectName),
		zap.Int("books", len(books)),
	)
	printBooks(books, false)
	return nil
}
