package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/table"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/tui"
)

var productsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List products awaiting approval",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireRole("aprovar produtos", rbac.ProductApproval...); err != nil {
			return err
		}

		products, err := a.client.GetProducts(cmd.Context(), domain.StatusPending)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			a.printNotice("Fila de aprovação vazia.")
			return nil
		}

		if !tui.IsInteractive() {
			printProductTable(table.New(table.ProductColumns(), table.ProductRows(products)))
			return nil
		}

		model := table.New(table.ProductColumns(), table.ProductRows(products), table.WithPageSize(15))
		selected, err := tui.Browse("Fila de aprovação", model)
		if err != nil {
			return err
		}
		if selected == "" {
			return nil
		}

		for i := range products {
			if products[i].EffectiveID() == selected {
				printProduct(a, &products[i])
				return reviewProduct(cmd, a, &products[i])
			}
		}
		return nil
	},
}

var productsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], domain.StatusApproved)
	},
}

var productsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], domain.StatusRejected)
	},
}

// reviewProduct asks what to do with the product just inspected from
// the queue.
func reviewProduct(cmd *cobra.Command, a *app, product *domain.Product) error {
	choice, err := tui.Select("O que fazer com "+product.NomeDoProduto+"?",
		[]string{"Aprovar", "Rejeitar", "Deixar na fila"})
	if err != nil {
		return err
	}

	switch choice {
	case "Aprovar":
		return setStatus(cmd, product.EffectiveID(), domain.StatusApproved)
	case "Rejeitar":
		return setStatus(cmd, product.EffectiveID(), domain.StatusRejected)
	}
	return nil
}

func setStatus(cmd *cobra.Command, id string, status domain.ProductStatus) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if _, err := a.requireRole("aprovar produtos", rbac.ProductApproval...); err != nil {
		return err
	}

	resp, err := a.client.UpdateProductStatus(cmd.Context(), id, status)
	if err != nil {
		return err
	}

	name := id
	if resp.Product != nil && resp.Product.NomeDoProduto != "" {
		name = resp.Product.NomeDoProduto
	}
	if status == domain.StatusApproved {
		a.printSuccess("Produto %s aprovado e publicado no catálogo.", name)
	} else {
		a.printSuccess("Produto %s rejeitado.", name)
	}
	return nil
}

func init() {
	productsCmd.AddCommand(productsPendingCmd)
	productsCmd.AddCommand(productsApproveCmd)
	productsCmd.AddCommand(productsRejectCmd)
}
