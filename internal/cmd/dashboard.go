package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/dashboard"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show inventory indicators and charts",
	Long: `Show the dashboard: summary cards for every signed-in user, plus the
grouped charts (status, roles, companies, GHS pictograms, physical
states, danger classification, storage) for administrators and
analysts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireSession()
		if err != nil {
			return err
		}

		stats, err := a.client.GetDashboardStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(a.styles.Title.Render("QuimiDocs — Painel"))
		fmt.Printf("Produtos cadastrados:  %d\n", stats.TotalProducts)
		if stats.LastApprovedProduct != "" {
			fmt.Printf("Último aprovado:       %s\n", stats.LastApprovedProduct)
		}
		fmt.Printf("Usuários:              %d\n", stats.TotalUsers)
		if stats.LastRegisteredUser != "" {
			fmt.Printf("Último usuário:        %s\n", stats.LastRegisteredUser)
		}
		fmt.Println()

		// Viewers get the cards only; the detailed charts follow the
		// stats route's allow-list.
		if !rbac.HasRole(&sess.User, rbac.DashboardStats...) {
			a.printNotice("Gráficos detalhados disponíveis para administradores e analistas.")
			return nil
		}

		barWidth, _ := cmd.Flags().GetInt("bar-width")
		styles := dashboard.DefaultStyles()
		for _, series := range dashboard.AllSeries(stats) {
			fmt.Println(dashboard.Render(series, barWidth, styles))
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().Int("bar-width", 30, "Width of the longest chart bar")
	rootCmd.AddCommand(dashboardCmd)
}
