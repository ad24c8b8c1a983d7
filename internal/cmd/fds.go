package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/session"
)

var fdsCmd = &cobra.Command{
	Use:   "fds",
	Short: "Attach and retrieve safety data sheets",
	Long: `Manage the safety data sheet (FDS) of a product.

An FDS is a PDF whose file name must match the product name exactly.
Attaching replaces any previous sheet; downloading streams the file
through a presigned link issued by the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var fdsAttachCmd = &cobra.Command{
	Use:   "attach <product-id> <file>",
	Short: "Upload the FDS PDF for a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireRole("anexar FDS", rbac.ProductRegistration...)
		if err != nil {
			return err
		}
		return attachFDS(cmd.Context(), a, sess, args[0], args[1])
	},
}

// attachFDS validates the PDF and hands it to the backend, which
// records the attachment location on the product itself.
func attachFDS(ctx context.Context, a *app, sess *session.Session, productID, filePath string) error {
	product, err := a.client.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if !rbac.CanEditProduct(&sess.User, product) {
		return errors.New(errors.ErrCodeEditDenied,
			"você não pode alterar a FDS deste produto")
	}

	if err := api.ValidateFDSFile(product.NomeDoProduto, filePath); err != nil {
		return errors.New(errors.ErrCodeUploadNameMismatch, err.Error()).
			WithSuggestion(fmt.Sprintf("Renomeie o arquivo para %q", product.NomeDoProduto+".pdf"))
	}

	if _, err := a.client.UploadFDS(ctx, productID, filePath); err != nil {
		return err
	}

	a.printSuccess("FDS anexada ao produto %s.", product.NomeDoProduto)
	return nil
}

var fdsViewCmd = &cobra.Command{
	Use:   "view <product-id>",
	Short: "Show the FDS download link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireSession(); err != nil {
			return err
		}

		link, err := a.client.GetDownloadURL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(link)
		a.printNotice("O link é pré-assinado e expira em poucos minutos.")
		return nil
	},
}

var fdsDownloadCmd = &cobra.Command{
	Use:   "download <product-id>",
	Short: "Download the FDS PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireSession(); err != nil {
			return err
		}

		product, err := a.client.GetProductByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if product.PDFURL == "" && product.PDFS3Key == "" {
			return errors.New(errors.ErrCodeProductNoAttachment,
				fmt.Sprintf("o produto %s não tem FDS anexada", product.NomeDoProduto))
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = product.NomeDoProduto + ".pdf"
		}
		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}

		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileWriteFailed,
				fmt.Sprintf("failed to create %s", outPath), err)
		}
		defer f.Close()

		if err := a.client.DownloadFDS(cmd.Context(), args[0], f); err != nil {
			os.Remove(outPath)
			return err
		}

		a.printSuccess("FDS salva em %s.", outPath)
		return nil
	},
}

func init() {
	fdsDownloadCmd.Flags().StringP("output", "o", "", "Destination file (default <product name>.pdf)")

	fdsCmd.AddCommand(fdsAttachCmd)
	fdsCmd.AddCommand(fdsViewCmd)
	fdsCmd.AddCommand(fdsDownloadCmd)

	rootCmd.AddCommand(fdsCmd)
}
