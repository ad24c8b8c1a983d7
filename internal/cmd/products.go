package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/table"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/tui"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse, register and maintain chemical products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in the catalog",
	Long: `List products. The catalog shows approved products; pass --status to
see another slice (the approval queue lives under 'products pending').

In a terminal the list opens as a browsable table: filter with /, sort
with s, pick a product with enter to see its details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireSession(); err != nil {
			return err
		}

		statusFlag, _ := cmd.Flags().GetString("status")
		status := domain.StatusApproved
		if statusFlag != "" {
			status = domain.ProductStatus(statusFlag)
			if err := status.Validate(); err != nil {
				return errors.New(errors.ErrCodeProductBadStatus, err.Error())
			}
		}

		products, err := a.client.GetProducts(cmd.Context(), status)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			a.printNotice("Nenhum produto com status %q.", status)
			return nil
		}

		if !tui.IsInteractive() {
			printProductTable(table.New(table.ProductColumns(), table.ProductRows(products)))
			return nil
		}

		model := table.New(table.ProductColumns(), table.ProductRows(products), table.WithPageSize(15))
		selected, err := tui.Browse("Produtos — "+string(status), model)
		if err != nil {
			return err
		}
		if selected == "" {
			return nil
		}
		for i := range products {
			if products[i].EffectiveID() == selected {
				printProduct(a, &products[i])
				return nil
			}
		}
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product in full",
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
		printProduct(a, product)
		return nil
	},
}

var productsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new product",
	Long: `Register a new product through the interactive form.

The product code is fetched from the backend before the form opens.
Pass --file to attach the FDS in the same submission; the file must be
a PDF named exactly after the product.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireRole("cadastrar produtos", rbac.ProductRegistration...)
		if err != nil {
			return err
		}

		var product domain.Product
		if code, err := a.client.GetNextProductCode(cmd.Context()); err == nil {
			product.Codigo = code
		}

		if err := tui.ProductForm(&product); err != nil {
			return err
		}
		product.Status = domain.StatusPending
		product.CreatedByUserID = domain.FlexID(sess.User.EffectiveID())
		product.CreatedBy = sess.User.Username

		filePath, _ := cmd.Flags().GetString("file")
		var resp *api.ProductResponse
		if filePath != "" {
			if err := api.ValidateFDSFile(product.NomeDoProduto, filePath); err != nil {
				return errors.New(errors.ErrCodeUploadNameMismatch, err.Error())
			}
			resp, err = a.client.CreateProductWithAttachment(cmd.Context(), &product, filePath)
		} else {
			resp, err = a.client.CreateProduct(cmd.Context(), &product)
		}
		if err != nil {
			return err
		}

		created := &product
		if resp.Product != nil {
			created = resp.Product
		}
		a.printSuccess("Produto %s cadastrado (código %s), aguardando aprovação.",
			created.NomeDoProduto, created.Codigo)
		return nil
	},
}

var productsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing product",
	Long: `Edit a product through the interactive form.

Administrators can edit any product. Analysts can edit only products
they created, and only while the product has not been approved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireRole("editar produtos", rbac.ProductRegistration...)
		if err != nil {
			return err
		}

		product, err := a.client.GetProductByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !rbac.CanEditProduct(&sess.User, product) {
			return errors.New(errors.ErrCodeEditDenied,
				"você não pode editar este produto").
				WithSuggestion("Analistas editam apenas os próprios produtos ainda não aprovados")
		}

		if err := tui.ProductForm(product); err != nil {
			return err
		}

		if _, err := a.client.UpdateProduct(cmd.Context(), args[0], product); err != nil {
			return err
		}
		a.printSuccess("Produto %s atualizado.", product.NomeDoProduto)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireSession()
		if err != nil {
			return err
		}
		if !rbac.CanDeleteProduct(&sess.User) {
			return errors.NewRoleDeniedError("excluir produtos")
		}

		product, err := a.client.GetProductByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		deleted, err := a.confirmDelete(yes, fmt.Sprintf("o produto %q", product.NomeDoProduto), func() error {
			return a.client.DeleteProduct(cmd.Context(), args[0])
		})
		if err != nil {
			return err
		}
		if !deleted {
			a.printNotice("Exclusão cancelada.")
			return nil
		}
		a.printSuccess("Produto %s excluído.", product.NomeDoProduto)
		return nil
	},
}

var productsNextCodeCmd = &cobra.Command{
	Use:   "next-code",
	Short: "Show the code the next registration will receive",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireRole("consultar código", rbac.ProductRegistration...); err != nil {
			return err
		}

		code, err := a.client.GetNextProductCode(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

// printProduct renders the full product detail view.
func printProduct(a *app, p *domain.Product) {
	fmt.Println(a.styles.Title.Render(p.NomeDoProduto))
	fmt.Printf("Código:        %s\n", p.Codigo)
	fmt.Printf("Status:        %s\n", a.styles.StatusBadge(p.Status))
	fmt.Printf("Fornecedor:    %s\n", p.Fornecedor)
	fmt.Printf("Empresa:       %s\n", p.Empresa)
	fmt.Printf("Estado físico: %s\n", p.EstadoFisico)
	fmt.Printf("Armazenamento: %s", p.LocalDeArmazenamento)
	if p.QtadeMaximaArmazenada != "" {
		fmt.Printf(" (máx. %s)", p.QtadeMaximaArmazenada)
	}
	fmt.Println()

	if len(p.Substancias) > 0 {
		fmt.Println(a.styles.Header.Render("Substâncias"))
		for _, s := range p.Substancias {
			line := "  " + s.Nome
			if s.CAS != "" {
				line += " — CAS " + s.CAS
			}
			if s.Concentracao != "" {
				line += " — " + s.Concentracao
			}
			fmt.Println(line)
		}
	}

	printHazards(a, "Perigos físicos", p.PerigosFisicos)
	printHazards(a, "Perigos à saúde", p.PerigosSaude)
	printHazards(a, "Perigos ao meio ambiente", p.PerigosMeioAmbiente)
	if p.PalavraDePerigo != "" {
		fmt.Printf("Palavra de perigo: %s\n", p.PalavraDePerigo)
	}
	if p.Categoria != "" {
		fmt.Printf("Categoria:         %s\n", p.Categoria)
	}

	if p.PDFURL != "" {
		a.printNotice("FDS anexada. Use 'quimidocs fds download %s' para baixar.", p.EffectiveID())
	} else {
		a.printNotice("Sem FDS anexada.")
	}
	if p.CreatedBy != "" {
		a.printNotice("Cadastrado por %s", p.CreatedBy)
	}
}

func printHazards(a *app, title string, hazards []string) {
	if len(hazards) == 0 {
		return
	}
	fmt.Printf("%s: %s\n", a.styles.Header.Render(title), strings.Join(hazards, ", "))
}

// printProductTable writes the plain, non-interactive listing.
func printProductTable(model *table.Model) {
	columns := model.Columns()
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.Title
	}
	fmt.Println(strings.Join(titles, "\t"))
	for _, row := range model.View() {
		fmt.Println(strings.Join(row.Cells, "\t"))
	}
}

func init() {
	productsListCmd.Flags().String("status", "", "Filter by status: pendente, aprovado, rejeitado")
	productsRegisterCmd.Flags().String("file", "", "FDS PDF to attach with the registration")
	productsDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsShowCmd)
	productsCmd.AddCommand(productsRegisterCmd)
	productsCmd.AddCommand(productsEditCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsNextCodeCmd)

	rootCmd.AddCommand(productsCmd)
}
