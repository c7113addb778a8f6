package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chapterweb/chaptersite/internal/service"
	"github.com/chapterweb/chaptersite/internal/storage"
)

func StorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Object storage commands",
	}

	cmd.AddCommand(storageRmCmd())
	cmd.AddCommand(storageKeyCmd())
	cmd.AddCommand(storagePathCmd())
	return cmd
}

func storageRmCmd() *cobra.Command {
	var bucket string

	rm := &cobra.Command{
		Use:   "rm <path-or-url>...",
		Short: "Delete objects by storage path or public URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			store, err := storage.New(cfg)
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.StorageDefaultBucket
			}

			uploads := service.NewUploadService(store, storage.NewCodec(cfg.StoragePublicURL), cfg.StorageDefaultBucket, cfg.StorageCacheControl)
			result := uploads.Delete(cmd.Context(), bucket, args...)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			err = enc.Encode(result)
			if err != nil {
				return err
			}
			if result.Failed() {
				return result.Err
			}
			return nil
		},
	}

	rm.Flags().StringVarP(&bucket, "bucket", "b", "", "bucket to delete from (default STORAGE_DEFAULT_BUCKET)")
	return rm
}

func storageKeyCmd() *cobra.Command {
	var folder string

	key := &cobra.Command{
		Use:   "key <filename>",
		Short: "Print a fresh storage key for filename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := storage.NewCodec("")
			fmt.Fprintln(cmd.OutOrStdout(), codec.Key(args[0], folder))
			return nil
		},
	}

	key.Flags().StringVarP(&folder, "folder", "f", "", "folder prefix")
	return key
}

func storagePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <public-url>",
		Short: "Print the storage path behind a public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := storage.NewCodec("").Path(args[0])
			if !ok {
				return fmt.Errorf("%q is not a public storage URL", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
